// internal/synthesis/multilingual.go
package synthesis

import (
	"math/rand"

	"synthgen/internal/dataset"
)

// multilingualReview returns a native review template for the language and
// tone, or "" when the language carries no bank and the caller should
// translate an English template instead. Only reviews have native banks.
func multilingualReview(rng *rand.Rand, lang dataset.Language, tone dataset.Tone) string {
	bank := multilingualReviews[lang][tone]
	if len(bank) == 0 {
		return ""
	}
	return bank[rng.Intn(len(bank))]
}

var multilingualReviews = map[dataset.Language]map[dataset.Tone][]string{
	dataset.LanguageSpanish: {
		dataset.TonePositive: {
			"Estoy muy satisfecho con este producto. Funciona exactamente como se describe y la calidad supera las expectativas. El servicio al cliente también fue excelente cuando tuve preguntas.",
			"Este es un producto excepcional que recomendaría ampliamente. Fácil de usar, gran funcionalidad, y vale cada centavo.",
			"Excelente relación calidad-precio. Las características son completas y la interfaz es intuitiva. Muy contento con mi compra.",
			"¡Cinco estrellas! Este producto me ha ahorrado horas de trabajo cada semana. Las funciones de automatización son particularmente impresionantes.",
			"No podría estar más feliz con mi compra. La configuración fue rápida, el rendimiento es confiable, y se integra bien con mis herramientas existentes.",
			"Producto fenomenal que ha transformado nuestro flujo de trabajo. La curva de aprendizaje fue mínima y los beneficios fueron inmediatos.",
			"Absolutamente vale la inversión. Esta herramienta ha mejorado la productividad de nuestro equipo en al menos un 30% desde su implementación.",
			"Calidad y fiabilidad excepcionales. En seis meses de uso intensivo, no hemos encontrado un solo problema o error.",
			"He probado muchos productos similares y este destaca por su diseño cuidadoso y sus potentes capacidades.",
			"Muy impresionado tanto con el producto como con el equipo de soporte. Han sido receptivos y útiles durante toda nuestra incorporación.",
		},
		dataset.ToneNegative: {
			"Desafortunadamente, este producto no cumplió con mis expectativas. Había problemas de calidad y la funcionalidad era limitada en comparación con lo que se anunciaba.",
			"Estoy decepcionado con esta compra. El producto llegó dañado y el servicio al cliente tardó en responder a mis preocupaciones.",
			"No vale el precio. El producto es difícil de usar y carece de características básicas que esperaba. No lo recomendaría.",
			"Frustrado con este producto. Se bloquea con frecuencia y pierde datos, lo que ha causado problemas significativos para mi trabajo.",
			"Mala calidad y poco fiable. Ahorre su dinero y busque en otro lugar una mejor alternativa.",
			"Me arrepiento de haber comprado este producto. La curva de aprendizaje es empinada y la documentación es inadecuada para la resolución de problemas.",
			"Los constantes problemas de rendimiento hacen que esta herramienta sea prácticamente inutilizable para nuestro equipo. El soporte no ha sido útil.",
			"La interfaz es confusa y poco intuitiva. Las tareas simples requieren demasiados pasos para completarse.",
			"Este producto tiene numerosos errores que no se han solucionado a pesar de múltiples actualizaciones durante varios meses.",
			"Experimentamos frecuentes caídas del sistema que afectaron nuestras operaciones comerciales. Nos cambiamos a una solución diferente.",
		},
		dataset.ToneNeutral: {
			"El producto funciona como se esperaba. Nada excepcional pero hace el trabajo adecuadamente. Justo valor por el precio.",
			"Producto decente con algunas buenas características. Hay margen de mejora pero en general satisface las necesidades básicas.",
			"Rendimiento promedio. Tiene algunas fortalezas y algunas debilidades. Podría funcionar mejor para otros dependiendo de necesidades específicas.",
			"Está bien. Hace lo que dice que hace, aunque la interfaz podría ser más intuitiva.",
			"Tres estrellas. Funciona para tareas básicas pero carece de algunas características avanzadas que lo harían excepcional.",
			"Funcional pero no particularmente impresionante. Cumple con los requisitos mínimos para nuestras necesidades.",
			"Solución intermedia que funciona de manera confiable pero no se destaca de los competidores.",
			"Algunas características están bien diseñadas mientras que otras se sienten incompletas. Las actualizaciones regulares lo han ido mejorando gradualmente.",
			"Rendimiento aceptable para el precio. Hay mejores opciones si estás dispuesto a pagar más.",
			"Hace lo que necesitamos, aunque a veces de manera indirecta. La documentación podría ser más completa.",
		},
	},
	dataset.LanguageFrench: {
		dataset.TonePositive: {
			"Je suis très satisfait de ce produit. Il fonctionne exactement comme décrit et la qualité dépasse les attentes. Le service client était également excellent lorsque j'avais des questions.",
			"C'est un produit exceptionnel que je recommande vivement. Facile à utiliser, grande fonctionnalité et vaut chaque centime.",
			"Excellent rapport qualité-prix. Les fonctionnalités sont complètes et l'interface est intuitive. Très content de mon achat.",
			"Cinq étoiles! Ce produit m'a fait gagner des heures de travail chaque semaine. Les fonctionnalités d'automatisation sont particulièrement impressionnantes.",
			"Je ne pourrais pas être plus heureux de mon achat. La configuration a été rapide, les performances sont fiables et il s'intègre bien à mes outils existants.",
			"Produit phénoménal qui a transformé notre flux de travail. La courbe d'apprentissage était minimale et les avantages ont été immédiats.",
			"Absolument rentable. Cet outil a amélioré la productivité de notre équipe d'au moins 30% depuis sa mise en œuvre.",
			"Qualité et fiabilité exceptionnelles. En six mois d'utilisation intensive, nous n'avons rencontré aucun problème ou bogue.",
			"J'ai essayé de nombreux produits similaires et celui-ci se démarque par sa conception réfléchie et ses capacités puissantes.",
			"Très impressionné par le produit et l'équipe de support. Ils ont été réactifs et utiles tout au long de notre intégration.",
		},
		dataset.ToneNegative: {
			"Malheureusement, ce produit n'a pas répondu à mes attentes. Il y avait des problèmes de qualité et les fonctionnalités étaient limitées par rapport à ce qui était annoncé.",
			"Je suis déçu de cet achat. Le produit est arrivé endommagé et le service client a été lent à répondre à mes préoccupations.",
			"Ne vaut pas le prix. Le produit est difficile à utiliser et manque de fonctionnalités de base auxquelles je m'attendais. Je ne recommanderais pas.",
			"Frustré par ce produit. Il plante fréquemment et perd des données, ce qui a causé des problèmes importants pour mon travail.",
			"Mauvaise qualité et peu fiable. Économisez votre argent et cherchez ailleurs une meilleure alternative.",
			"Je regrette d'avoir acheté ce produit. La courbe d'apprentissage est abrupte et la documentation est inadéquate pour le dépannage.",
			"Des problèmes de performance constants rendent cet outil pratiquement inutilisable pour notre équipe. Le support n'a pas été utile.",
			"L'interface est déroutante et contre-intuitive. Les tâches simples nécessitent trop d'étapes pour être accomplies.",
			"Ce produit présente de nombreux bugs qui n'ont pas été corrigés malgré plusieurs mises à jour sur plusieurs mois.",
			"Nous avons connu de fréquentes interruptions de service qui ont impacté nos opérations commerciales. Nous passons à une solution différente.",
		},
		dataset.ToneNeutral: {
			"Le produit fonctionne comme prévu. Rien d'exceptionnel mais fait le travail correctement. Juste valeur pour le prix.",
			"Produit correct avec quelques bonnes fonctionnalités. Il y a place à l'amélioration mais dans l'ensemble, il répond aux besoins de base.",
			"Performance moyenne. A des forces et des faiblesses. Pourrait mieux fonctionner pour d'autres selon les besoins spécifiques.",
			"C'est correct. Fait ce qu'il prétend faire, bien que l'interface pourrait être plus intuitive.",
			"Trois étoiles. Fonctionne pour les tâches de base mais manque de fonctionnalités avancées qui le rendraient exceptionnel.",
			"Fonctionnel mais pas particulièrement impressionnant. Répond aux exigences minimales pour nos besoins.",
			"Solution intermédiaire qui fonctionne de manière fiable mais ne se démarque pas des concurrents.",
			"Certaines fonctionnalités sont bien conçues tandis que d'autres semblent incomplètes. Des mises à jour régulières l'ont progressivement amélioré.",
			"Performance acceptable pour le prix. Il existe de meilleures options si vous êtes prêt à payer plus.",
			"Fait ce dont nous avons besoin, même si parfois de manière détournée. La documentation pourrait être plus complète.",
		},
	},
	dataset.LanguageGerman: {
		dataset.TonePositive: {
			"Ich bin mit diesem Produkt sehr zufrieden. Es funktioniert genau wie beschrieben und die Qualität übertrifft die Erwartungen. Der Kundenservice war auch ausgezeichnet, als ich Fragen hatte.",
			"Dies ist ein hervorragendes Produkt, das ich unbedingt empfehlen würde. Einfach zu bedienen, tolle Funktionalität und jeden Cent wert.",
			"Ausgezeichnetes Preis-Leistungs-Verhältnis. Die Funktionen sind umfassend und die Benutzeroberfläche ist intuitiv. Sehr glücklich mit meinem Kauf.",
			"Fünf Sterne! Dieses Produkt hat mir jede Woche Stunden Arbeit erspart. Die Automatisierungsfunktionen sind besonders beeindruckend.",
			"Könnte mit meinem Kauf nicht glücklicher sein. Die Einrichtung war schnell, die Leistung ist zuverlässig und es integriert sich gut mit meinen vorhandenen Tools.",
			"Phänomenales Produkt, das unseren Arbeitsablauf transformiert hat. Die Lernkurve war minimal und die Vorteile waren sofort spürbar.",
			"Absolut die Investition wert. Dieses Tool hat die Produktivität unseres Teams seit der Implementierung um mindestens 30% verbessert.",
			"Außergewöhnliche Qualität und Zuverlässigkeit. In sechs Monaten intensiver Nutzung haben wir kein einziges Problem oder keinen einzigen Fehler festgestellt.",
			"Ich habe viele ähnliche Produkte ausprobiert und dieses sticht durch sein durchdachtes Design und seine leistungsstarken Funktionen hervor.",
			"Sehr beeindruckt von sowohl dem Produkt als auch dem Support-Team. Sie waren während unseres gesamten Onboardings reaktionsschnell und hilfreich.",
		},
		dataset.ToneNegative: {
			"Leider hat dieses Produkt meine Erwartungen nicht erfüllt. Es gab Qualitätsprobleme und die Funktionalität war im Vergleich zu dem, was beworben wurde, eingeschränkt.",
			"Ich bin von diesem Kauf enttäuscht. Das Produkt kam beschädigt an und der Kundenservice reagierte nur langsam auf meine Bedenken.",
			"Nicht den Preis wert. Das Produkt ist schwer zu bedienen und es fehlen grundlegende Funktionen, die ich erwartet hatte. Würde ich nicht empfehlen.",
			"Frustriert mit diesem Produkt. Es stürzt häufig ab und verliert Daten, was zu erheblichen Problemen bei meiner Arbeit geführt hat.",
			"Schlechte Qualität und unzuverlässig. Sparen Sie Ihr Geld und suchen Sie woanders nach einer besseren Alternative.",
			"Ich bereue den Kauf dieses Produkts. Die Lernkurve ist steil und die Dokumentation ist für die Fehlerbehebung unzureichend.",
			"Ständige Leistungsprobleme machen dieses Tool für unser Team praktisch unbrauchbar. Der Support war nicht hilfreich.",
			"Die Benutzeroberfläche ist verwirrend und kontraintuitiv. Einfache Aufgaben erfordern zu viele Schritte, um sie zu erledigen.",
			"Dieses Produkt hat zahlreiche Fehler, die trotz mehrerer Updates über mehrere Monate hinweg nicht behoben wurden.",
			"Wir erlebten häufige Ausfallzeiten, die unsere Geschäftsabläufe beeinträchtigten. Wir wechseln zu einer anderen Lösung.",
		},
		dataset.ToneNeutral: {
			"Das Produkt funktioniert wie erwartet. Nichts Außergewöhnliches, aber erledigt die Aufgabe angemessen. Fairer Wert für den Preis.",
			"Anständiges Produkt mit einigen guten Funktionen. Es gibt Raum für Verbesserungen, aber insgesamt erfüllt es grundlegende Bedürfnisse.",
			"Durchschnittliche Leistung. Hat einige Stärken und einige Schwächen. Könnte für andere je nach spezifischen Bedürfnissen besser funktionieren.",
			"Es ist in Ordnung. Tut, was es zu tun behauptet, obwohl die Benutzeroberfläche intuitiver sein könnte.",
			"Drei Sterne. Funktioniert für grundlegende Aufgaben, aber es fehlen einige fortgeschrittene Funktionen, die es außergewöhnlich machen würden.",
			"Funktional, aber nicht besonders beeindruckend. Erfüllt die Mindestanforderungen für unsere Bedürfnisse.",
			"Mittelmäßige Lösung, die zuverlässig funktioniert, sich aber nicht von Konkurrenten abhebt.",
			"Einige Funktionen sind gut gestaltet, während andere unvollständig wirken. Regelmäßige Updates haben es nach und nach verbessert.",
			"Akzeptable Leistung für den Preis. Es gibt bessere Optionen, wenn Sie bereit sind, mehr zu bezahlen.",
			"Macht, was wir brauchen, wenn auch manchmal auf Umwegen. Die Dokumentation könnte umfassender sein.",
		},
	},
	dataset.LanguageItalian: {
		dataset.TonePositive: {
			"Sono molto soddisfatto di questo prodotto. Funziona esattamente come descritto e la qualità supera le aspettative. Anche il servizio clienti è stato eccellente quando avevo domande.",
			"Questo è un prodotto eccezionale che consiglierei vivamente. Facile da usare, ottime funzionalità e vale ogni centesimo.",
			"Eccellente rapporto qualità-prezzo. Le caratteristiche sono complete e l'interfaccia è intuitiva. Molto felice del mio acquisto.",
			"Cinque stelle! Questo prodotto mi ha fatto risparmiare ore di lavoro ogni settimana. Le funzionalità di automazione sono particolarmente impressionanti.",
			"Non potrei essere più felice del mio acquisto. La configurazione è stata rapida, le prestazioni sono affidabili e si integra bene con i miei strumenti esistenti.",
			"Prodotto fenomenale che ha trasformato il nostro flusso di lavoro. La curva di apprendimento è stata minima e i benefici sono stati immediati.",
			"Assolutamente vale l'investimento. Questo strumento ha migliorato la produttività del nostro team di almeno il 30% dall'implementazione.",
			"Qualità e affidabilità eccezionali. In sei mesi di utilizzo intenso, non abbiamo riscontrato un singolo problema o bug.",
			"Ho provato molti prodotti simili e questo spicca per il suo design attento e le potenti funzionalità.",
			"Molto colpito sia dal prodotto che dal team di supporto. Sono stati reattivi e disponibili durante tutto il nostro onboarding.",
		},
		dataset.ToneNegative: {
			"Purtroppo, questo prodotto non ha soddisfatto le mie aspettative. C'erano problemi di qualità e la funzionalità era limitata rispetto a quanto pubblicizzato.",
			"Sono deluso di questo acquisto. Il prodotto è arrivato danneggiato e il servizio clienti è stato lento a rispondere alle mie preoccupazioni.",
			"Non vale il prezzo. Il prodotto è difficile da usare e manca di funzionalità di base che mi aspettavo. Non lo consiglierei.",
			"Frustrato con questo prodotto. Si blocca frequentemente e perde dati, il che ha causato problemi significativi per il mio lavoro.",
			"Scarsa qualità e inaffidabile. Risparmia i tuoi soldi e cerca altrove un'alternativa migliore.",
			"Mi pento di aver acquistato questo prodotto. La curva di apprendimento è ripida e la documentazione è inadeguata per la risoluzione dei problemi.",
			"Costanti problemi di prestazioni rendono questo strumento praticamente inutilizzabile per il nostro team. Il supporto non è stato utile.",
			"L'interfaccia è confusa e controintuitiva. Le attività semplici richiedono troppi passaggi per essere completate.",
			"Questo prodotto ha numerosi bug che non sono stati risolti nonostante diversi aggiornamenti nell'arco di diversi mesi.",
			"Abbiamo riscontrato frequenti interruzioni che hanno influito sulle nostre operazioni aziendali. Stiamo passando a una soluzione diversa.",
		},
		dataset.ToneNeutral: {
			"Il prodotto funziona come previsto. Niente di eccezionale ma svolge il lavoro adeguatamente. Giusto valore per il prezzo.",
			"Prodotto decente con alcune buone caratteristiche. C'è margine di miglioramento ma nel complesso soddisfa le esigenze di base.",
			"Prestazioni nella media. Ha alcuni punti di forza e alcune debolezze. Potrebbe funzionare meglio per altri a seconda delle esigenze specifiche.",
			"È accettabile. Fa ciò che dice di fare, anche se l'interfaccia potrebbe essere più intuitiva.",
			"Tre stelle. Funziona per attività di base ma manca di alcune funzionalità avanzate che lo renderebbero eccezionale.",
			"Funzionale ma non particolarmente impressionante. Soddisfa i requisiti minimi per le nostre esigenze.",
			"Soluzione di medio livello che funziona in modo affidabile ma non si distingue dai concorrenti.",
			"Alcune funzionalità sono ben progettate mentre altre sembrano incomplete. Aggiornamenti regolari lo hanno migliorato gradualmente.",
			"Prestazioni accettabili per il prezzo. Ci sono opzioni migliori se sei disposto a pagare di più.",
			"Fa ciò di cui abbiamo bisogno, anche se a volte in modo indiretto. La documentazione potrebbe essere più completa.",
		},
	},
	dataset.LanguagePortuguese: {
		dataset.TonePositive: {
			"Estou muito satisfeito com este produto. Funciona exatamente como descrito e a qualidade excede as expectativas. O atendimento ao cliente também foi excelente quando tive dúvidas.",
			"Este é um produto excepcional que eu recomendaria altamente. Fácil de usar, ótima funcionalidade e vale cada centavo.",
			"Excelente custo-benefício. Os recursos são abrangentes e a interface é intuitiva. Muito feliz com minha compra.",
			"Cinco estrelas! Este produto me economizou horas de trabalho por semana. Os recursos de automação são particularmente impressionantes.",
			"Não poderia estar mais feliz com minha compra. A configuração foi rápida, o desempenho é confiável e se integra bem com minhas ferramentas existentes.",
			"Produto fenomenal que transformou nosso fluxo de trabalho. A curva de aprendizado foi mínima e os benefícios foram imediatos.",
			"Absolutamente vale o investimento. Esta ferramenta melhorou a produtividade da nossa equipe em pelo menos 30% desde a implementação.",
			"Qualidade e confiabilidade excepcionais. Em seis meses de uso intenso, não encontramos um único problema ou bug.",
			"Experimentei muitos produtos semelhantes e este se destaca pelo seu design cuidadoso e recursos poderosos.",
			"Muito impressionado com o produto e com a equipe de suporte. Eles foram responsivos e prestativos durante todo o nosso processo de integração.",
		},
		dataset.ToneNegative: {
			"Infelizmente, este produto não atendeu às minhas expectativas. Houve problemas de qualidade e a funcionalidade era limitada em comparação com o que foi anunciado.",
			"Estou decepcionado com esta compra. O produto chegou danificado e o atendimento ao cliente foi lento para responder às minhas preocupações.",
			"Não vale o preço. O produto é difícil de usar e não possui recursos básicos que eu esperava. Não recomendaria.",
			"Frustrado com este produto. Ele trava frequentemente e perde dados, o que causou problemas significativos para o meu trabalho.",
			"Má qualidade e não confiável. Economize seu dinheiro e procure em outro lugar uma alternativa melhor.",
			"Me arrependo de comprar este produto. A curva de aprendizado é íngreme e a documentação é inadequada para solução de problemas.",
			"Problemas constantes de desempenho tornam esta ferramenta praticamente inutilizável para nossa equipe. O suporte não foi útil.",
			"A interface é confusa e contra-intuitiva. Tarefas simples exigem muitas etapas para serem concluídas.",
			"Este produto tem vários bugs que não foram corrigidos apesar de várias atualizações ao longo de vários meses.",
			"Experimentamos frequentes períodos de inatividade que afetaram nossas operações comerciais. Estamos mudando para uma solução diferente.",
		},
		dataset.ToneNeutral: {
			"O produto funciona como esperado. Nada excepcional, mas faz o trabalho adequadamente. Valor justo para o preço.",
			"Produto decente com alguns bons recursos. Há espaço para melhorias, mas no geral atende às necessidades básicas.",
			"Desempenho médio. Tem alguns pontos fortes e alguns pontos fracos. Pode funcionar melhor para outros, dependendo das necessidades específicas.",
			"Está ok. Faz o que diz que faz, embora a interface pudesse ser mais intuitiva.",
			"Três estrelas. Funciona para tarefas básicas, mas carece de alguns recursos avançados que o tornariam excepcional.",
			"Funcional, mas não particularmente impressionante. Atende aos requisitos mínimos para nossas necessidades.",
			"Solução mediana que funciona de forma confiável, mas não se destaca dos concorrentes.",
			"Alguns recursos são bem projetados, enquanto outros parecem incompletos. Atualizações regulares têm melhorado gradualmente.",
			"Desempenho aceitável pelo preço. Existem opções melhores se você estiver disposto a pagar mais.",
			"Faz o que precisamos, embora às vezes de maneira indireta. A documentação poderia ser mais abrangente.",
		},
	},
}
