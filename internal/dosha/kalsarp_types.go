package dosha

import (
	"github.com/vastucartapps/jyotish/internal/model"
	"github.com/vastucartapps/jyotish/internal/ring"
)

type kalsarpEntry struct {
	id        string
	name      model.Bilingual
	effects   model.Bilingual
	intensity model.Severity
}

// kalsarpTable is indexed by Rahu's house minus one.
var kalsarpTable = [ring.Houses]kalsarpEntry{
	{
		id:   "anant",
		name: model.Bilingual{En: "Anant Kalsarp", Hi: "अनंत कालसर्प"},
		effects: model.Bilingual{
			En: "Struggles around self-image, health and marriage; obstacles early in life that ease with persistence.",
			Hi: "स्वास्थ्य, व्यक्तित्व और विवाह से जुड़े संघर्ष; आरंभिक जीवन की बाधाएँ धैर्य से कम होती हैं।",
		},
		intensity: model.SeveritySevere,
	},
	{
		id:   "kulik",
		name: model.Bilingual{En: "Kulik Kalsarp", Hi: "कुलिक कालसर्प"},
		effects: model.Bilingual{
			En: "Strain on family finances and speech; disputes within the family over money.",
			Hi: "पारिवारिक धन और वाणी पर दबाव; परिवार में धन को लेकर विवाद।",
		},
		intensity: model.SeverityModerate,
	},
	{
		id:   "vasuki",
		name: model.Bilingual{En: "Vasuki Kalsarp", Hi: "वासुकि कालसर्प"},
		effects: model.Bilingual{
			En: "Friction with siblings and neighbours; effort in short journeys and communication goes unrewarded.",
			Hi: "भाई-बहनों और पड़ोसियों से मतभेद; छोटी यात्राओं और संवाद में परिश्रम का पूरा फल नहीं।",
		},
		intensity: model.SeverityModerate,
	},
	{
		id:   "shankhpal",
		name: model.Bilingual{En: "Shankhpal Kalsarp", Hi: "शंखपाल कालसर्प"},
		effects: model.Bilingual{
			En: "Unrest at home, concerns about mother, property and vehicles.",
			Hi: "घर में अशांति, माता, संपत्ति और वाहन संबंधी चिंताएँ।",
		},
		intensity: model.SeverityModerate,
	},
	{
		id:   "padma",
		name: model.Bilingual{En: "Padma Kalsarp", Hi: "पद्म कालसर्प"},
		effects: model.Bilingual{
			En: "Delays around children and education; speculative ventures carry risk.",
			Hi: "संतान और शिक्षा में विलंब; सट्टा और जोखिम भरे कार्यों में हानि की संभावना।",
		},
		intensity: model.SeverityModerate,
	},
	{
		id:   "mahapadma",
		name: model.Bilingual{En: "Mahapadma Kalsarp", Hi: "महापद्म कालसर्प"},
		effects: model.Bilingual{
			En: "Hidden enemies, debts and chronic ailments; victory comes after long struggle.",
			Hi: "गुप्त शत्रु, ऋण और दीर्घकालिक रोग; लंबे संघर्ष के बाद विजय।",
		},
		intensity: model.SeveritySevere,
	},
	{
		id:   "takshak",
		name: model.Bilingual{En: "Takshak Kalsarp", Hi: "तक्षक कालसर्प"},
		effects: model.Bilingual{
			En: "Turbulence in marriage and partnerships; business associations need care.",
			Hi: "विवाह और साझेदारी में उथल-पुथल; व्यापारिक संबंधों में सावधानी आवश्यक।",
		},
		intensity: model.SeveritySevere,
	},
	{
		id:   "karkotak",
		name: model.Bilingual{En: "Karkotak Kalsarp", Hi: "कर्कोटक कालसर्प"},
		effects: model.Bilingual{
			En: "Sudden losses, inheritance disputes and anxiety about longevity.",
			Hi: "अचानक हानि, पैतृक संपत्ति के विवाद और आयु संबंधी चिंता।",
		},
		intensity: model.SeveritySevere,
	},
	{
		id:   "shankhachur",
		name: model.Bilingual{En: "Shankhachur Kalsarp", Hi: "शंखचूड़ कालसर्प"},
		effects: model.Bilingual{
			En: "Fortune arrives late; differences with father and teachers, setbacks in faith.",
			Hi: "भाग्य देर से साथ देता है; पिता और गुरु से मतभेद, धार्मिक कार्यों में रुकावट।",
		},
		intensity: model.SeverityModerate,
	},
	{
		id:   "ghatak",
		name: model.Bilingual{En: "Ghatak Kalsarp", Hi: "घातक कालसर्प"},
		effects: model.Bilingual{
			En: "Career instability and conflict with authority; reputation needs guarding.",
			Hi: "करियर में अस्थिरता और अधिकारियों से टकराव; प्रतिष्ठा की रक्षा आवश्यक।",
		},
		intensity: model.SeveritySevere,
	},
	{
		id:   "vishdhar",
		name: model.Bilingual{En: "Vishdhar Kalsarp", Hi: "विषधर कालसर्प"},
		effects: model.Bilingual{
			En: "Gains fluctuate; elder siblings and friendships are a mixed blessing.",
			Hi: "लाभ में उतार-चढ़ाव; बड़े भाई-बहन और मित्रों से मिश्रित फल।",
		},
		intensity: model.SeverityMild,
	},
	{
		id:   "sheshnag",
		name: model.Bilingual{En: "Sheshnag Kalsarp", Hi: "शेषनाग कालसर्प"},
		effects: model.Bilingual{
			En: "Expenses, foreign travel and disturbed sleep; spiritual pursuits bring relief.",
			Hi: "व्यय, विदेश यात्रा और अनिद्रा; आध्यात्मिक साधना से राहत।",
		},
		intensity: model.SeverityMild,
	},
}

// KalsarpType looks up the named pattern for Rahu's house. ok is false only
// for a house outside 1..12.
func KalsarpType(rahuHouse int) (model.KalsarpType, bool) {
	if rahuHouse < 1 || rahuHouse > ring.Houses {
		return model.KalsarpType{}, false
	}
	e := kalsarpTable[rahuHouse-1]
	return model.KalsarpType{
		ID:        e.id,
		Name:      e.name,
		RahuHouse: rahuHouse,
		KetuHouse: ring.Advance(rahuHouse, 6),
		Effects:   e.effects,
		Intensity: e.intensity,
	}, true
}
