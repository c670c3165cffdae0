package yoga

import "github.com/vastucartapps/jyotish/internal/model"

type yogaText struct {
	category    model.YogaCategory
	name        model.Bilingual
	description model.Bilingual
	effects     model.Bilingual
	intensity   model.Intensity
}

// mahapurushaOrder is the order the five Mahapurusha checks run in.
var mahapurushaOrder = []struct {
	graha model.Graha
	yoga  model.YogaType
}{
	{model.Mars, model.YogaRuchaka},
	{model.Mercury, model.YogaBhadra},
	{model.Jupiter, model.YogaHamsa},
	{model.Venus, model.YogaMalavya},
	{model.Saturn, model.YogaShasha},
}

var catalog = map[model.YogaType]yogaText{
	model.YogaRuchaka: {
		category:    model.CategoryMahapurusha,
		name:        model.Bilingual{En: "Ruchaka Yoga", Hi: "रुचक योग"},
		description: model.Bilingual{En: "Mars in a Kendra in its own or exaltation sign.", Hi: "मंगल केंद्र में स्वराशि या उच्च राशि में।"},
		effects:     model.Bilingual{En: "Courage, leadership and success in command, sport or the armed forces.", Hi: "साहस, नेतृत्व और सेना, खेल या प्रशासन में सफलता।"},
		intensity:   model.IntensityPowerful,
	},
	model.YogaBhadra: {
		category:    model.CategoryMahapurusha,
		name:        model.Bilingual{En: "Bhadra Yoga", Hi: "भद्र योग"},
		description: model.Bilingual{En: "Mercury in a Kendra in its own or exaltation sign.", Hi: "बुध केंद्र में स्वराशि या उच्च राशि में।"},
		effects:     model.Bilingual{En: "Sharp intellect, eloquence and success in trade, writing and scholarship.", Hi: "तीक्ष्ण बुद्धि, वाक्पटुता तथा व्यापार, लेखन और विद्या में सफलता।"},
		intensity:   model.IntensityPowerful,
	},
	model.YogaHamsa: {
		category:    model.CategoryMahapurusha,
		name:        model.Bilingual{En: "Hamsa Yoga", Hi: "हंस योग"},
		description: model.Bilingual{En: "Jupiter in a Kendra in its own or exaltation sign.", Hi: "गुरु केंद्र में स्वराशि या उच्च राशि में।"},
		effects:     model.Bilingual{En: "Wisdom, righteousness, respect and a spiritual bent.", Hi: "ज्ञान, धर्मपरायणता, सम्मान और आध्यात्मिक रुचि।"},
		intensity:   model.IntensityPowerful,
	},
	model.YogaMalavya: {
		category:    model.CategoryMahapurusha,
		name:        model.Bilingual{En: "Malavya Yoga", Hi: "मालव्य योग"},
		description: model.Bilingual{En: "Venus in a Kendra in its own or exaltation sign.", Hi: "शुक्र केंद्र में स्वराशि या उच्च राशि में।"},
		effects:     model.Bilingual{En: "Comfort, beauty, artistic talent and a happy married life.", Hi: "सुख-सुविधा, सौंदर्य, कलात्मक प्रतिभा और सुखी वैवाहिक जीवन।"},
		intensity:   model.IntensityPowerful,
	},
	model.YogaShasha: {
		category:    model.CategoryMahapurusha,
		name:        model.Bilingual{En: "Shasha Yoga", Hi: "शश योग"},
		description: model.Bilingual{En: "Saturn in a Kendra in its own or exaltation sign.", Hi: "शनि केंद्र में स्वराशि या उच्च राशि में।"},
		effects:     model.Bilingual{En: "Authority over people, discipline and rise through sustained effort.", Hi: "जनसमूह पर अधिकार, अनुशासन और निरंतर परिश्रम से उन्नति।"},
		intensity:   model.IntensityPowerful,
	},
	model.YogaGajaKesari: {
		category:    model.CategoryGajaKesari,
		name:        model.Bilingual{En: "Gaja Kesari Yoga", Hi: "गजकेसरी योग"},
		description: model.Bilingual{En: "Jupiter in a Kendra from the Moon.", Hi: "चंद्रमा से केंद्र में गुरु।"},
		effects:     model.Bilingual{En: "Lasting reputation, intelligence and prosperity.", Hi: "स्थायी यश, बुद्धिमत्ता और समृद्धि।"},
		intensity:   model.IntensityStrong,
	},
	model.YogaBudhaditya: {
		category:    model.CategoryBudhaditya,
		name:        model.Bilingual{En: "Budhaditya Yoga", Hi: "बुधादित्य योग"},
		description: model.Bilingual{En: "Sun and Mercury in the same house.", Hi: "सूर्य और बुध एक ही भाव में।"},
		effects:     model.Bilingual{En: "Analytical mind, good communication and recognition for skill.", Hi: "विश्लेषणात्मक बुद्धि, अच्छा संवाद और कौशल के लिए मान्यता।"},
		intensity:   model.IntensityModerate,
	},
	model.YogaLakshmi: {
		category:    model.CategoryLakshmi,
		name:        model.Bilingual{En: "Lakshmi Yoga", Hi: "लक्ष्मी योग"},
		description: model.Bilingual{En: "Venus and Jupiter together or in mutual opposition.", Hi: "शुक्र और गुरु की युति या परस्पर सप्तम संबंध।"},
		effects:     model.Bilingual{En: "Wealth, grace and a comfortable life.", Hi: "धन, वैभव और सुखमय जीवन।"},
		intensity:   model.IntensityStrong,
	},
	model.YogaViparitaRaja: {
		category:    model.CategoryViparita,
		name:        model.Bilingual{En: "Viparita Raja Yoga", Hi: "विपरीत राजयोग"},
		description: model.Bilingual{En: "A lord of the 6th, 8th or 12th placed in a dusthana (6, 8 or 12).", Hi: "षष्ठ, अष्टम या द्वादश भाव का स्वामी दुःस्थान (6, 8 या 12) में।"},
		effects:     model.Bilingual{En: "Success that rises out of adversity and the setbacks of rivals.", Hi: "विपरीत परिस्थितियों और प्रतिद्वंद्वियों की हार से मिलने वाली सफलता।"},
		intensity:   model.IntensityStrong,
	},
	model.YogaNeechaBhanga: {
		category:    model.CategoryNeechaBhanga,
		name:        model.Bilingual{En: "Neecha Bhanga Raja Yoga", Hi: "नीचभंग राजयोग"},
		description: model.Bilingual{En: "A debilitated planet whose dispositor stands in a Kendra from the ascendant.", Hi: "नीच ग्रह जिसकी राशि का स्वामी लग्न से केंद्र में है।"},
		effects:     model.Bilingual{En: "Early weakness turns into notable achievement later in life.", Hi: "प्रारंभिक कमजोरी आगे चलकर विशेष उपलब्धि में बदलती है।"},
		intensity:   model.IntensityStrong,
	},
	model.YogaDhana: {
		category:    model.CategoryDhana,
		name:        model.Bilingual{En: "Dhana Yoga", Hi: "धन योग"},
		description: model.Bilingual{En: "The lords of the 2nd and 11th houses together.", Hi: "द्वितीय और एकादश भाव के स्वामी एक साथ।"},
		effects:     model.Bilingual{En: "Steady accumulation of wealth and gains.", Hi: "धन और लाभ का निरंतर संचय।"},
		intensity:   model.IntensityStrong,
	},
}

var interpretations = map[model.YogaTier]model.Interpretation{
	model.TierNoYoga: {
		Tier:  model.TierNoYoga,
		Title: model.Bilingual{En: "No major Raj Yoga", Hi: "कोई प्रमुख राजयोग नहीं"},
		Summary: model.Bilingual{
			En: "None of the major Raj Yoga combinations is formed. Results depend on the overall strength of the chart and the running dasha.",
			Hi: "कोई प्रमुख राजयोग नहीं बनता। फल कुंडली की समग्र शक्ति और चल रही दशा पर निर्भर करते हैं।",
		},
	},
	model.TierPresent: {
		Tier:  model.TierPresent,
		Title: model.Bilingual{En: "Raj Yoga present", Hi: "राजयोग उपस्थित"},
		Summary: model.Bilingual{
			En: "One Raj Yoga is formed. Its results show most clearly during the periods of the planets involved.",
			Hi: "एक राजयोग बनता है। इसके फल संबंधित ग्रहों की दशा में सबसे स्पष्ट दिखते हैं।",
		},
	},
	model.TierMultiple: {
		Tier:  model.TierMultiple,
		Title: model.Bilingual{En: "Multiple Raj Yogas", Hi: "अनेक राजयोग"},
		Summary: model.Bilingual{
			En: "Several Raj Yogas reinforce each other, pointing to marked success and recognition.",
			Hi: "अनेक राजयोग एक-दूसरे को बल देते हैं, जो विशेष सफलता और प्रतिष्ठा का संकेत है।",
		},
	},
}

func newYoga(t model.YogaType, planets []model.Graha, houses []int) model.Yoga {
	text := catalog[t]
	return model.Yoga{
		Type:        t,
		Category:    text.category,
		Name:        text.name,
		Description: text.description,
		Effects:     text.effects,
		Intensity:   text.intensity,
		Planets:     planets,
		Houses:      houses,
	}
}

// Interpret maps a yoga count onto its tier narrative.
func Interpret(count int) model.Interpretation {
	switch {
	case count == 0:
		return interpretations[model.TierNoYoga]
	case count == 1:
		return interpretations[model.TierPresent]
	default:
		return interpretations[model.TierMultiple]
	}
}
