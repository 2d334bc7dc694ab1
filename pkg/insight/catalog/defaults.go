package catalog

import "github.com/cognicore/insightful/pkg/insight/model"

// DefaultVersion identifies the built-in tables.
const DefaultVersion = "2024.1"

// Default returns the built-in catalog (Dutch and English patterns).
func Default() *Catalog {
	c, err := New(DefaultTables())
	if err != nil {
		panic("catalog: built-in tables are invalid: " + err.Error())
	}
	return c
}

// DefaultTables returns a fresh copy of the built-in raw tables.
func DefaultTables() Tables {
	return Tables{
		Version:   DefaultVersion,
		Threshold: DefaultThreshold,
		Cap:       DefaultCap,
		Indicators: map[model.Kind][]IndicatorSpec{
			model.KindPainPoint: painIndicators(),
			model.KindDesire:    desireIndicators(),
		},
		Categories: map[model.Kind][]RuleSpec{
			model.KindPainPoint: painCategories(),
			model.KindDesire:    desireCategories(),
		},
		Vocabularies:   vocabularies(),
		DomainKeywords: domainKeywords(),
	}
}

// Strong indicators qualify a sentence on their own (weight > 0.7); weaker
// ones only count when they compound.
func painIndicators() []IndicatorSpec {
	return []IndicatorSpec{
		{Label: "hate", Pattern: `\b(haat|haten|hekel aan|hate|hated|hates)\b`, Weight: 0.8},
		{Label: "terrible", Pattern: `\b(terrible|awful|horrible|worst|verschrikkelijk|vreselijk|waardeloos|slechtste)\b`, Weight: 0.8},
		{Label: "disappointed", Pattern: `\b(disappointed|disappointing|teleurgesteld|teleurstellend)\b`, Weight: 0.8},
		{Label: "waste", Pattern: `\b(waste of money|rip-?off|zonde van het geld|geldverspilling)\b`, Weight: 0.8},
		{Label: "frustration", Pattern: `\b(frustrat\w*|annoying|irritating|irritant|ergerlijk|vervelend)\b`, Weight: 0.6},
		{Label: "broken", Pattern: `\b(broken|broke|stopped working|doesn['’]?t work|kapot|stuk|defect|werkt niet)\b`, Weight: 0.6},
		{Label: "complaint", Pattern: `\b(complain\w*|klacht\w*)\b`, Weight: 0.6},
		{Label: "too_much", Pattern: `\b(too (expensive|slow|much|small|big)|te (duur|traag|klein|groot))\b`, Weight: 0.6},
		{Label: "problem", Pattern: `\b(problems?|issues?|probleem|problemen)\b`, Weight: 0.5},
		{Label: "struggle", Pattern: `\b(struggl\w*|moeite)\b`, Weight: 0.5},
		{Label: "poor", Pattern: `\b(bad|poor|cheap|blurry|slecht|goedkoop|wazig)\b`, Weight: 0.4},
		{Label: "always", Pattern: `\b(always|constantly|every time|altijd|steeds)\b`, Weight: 0.3},
		{Label: "never", Pattern: `\b(never|nooit)\b`, Weight: 0.3},
	}
}

func desireIndicators() []IndicatorSpec {
	return []IndicatorSpec{
		{Label: "wish", Pattern: `\b(wish|wished|wens|wenste|zou willen)\b`, Weight: 0.8},
		{Label: "if_only", Pattern: `\b(if only|was het maar|had ik maar)\b`, Weight: 0.8},
		{Label: "would_be_great", Pattern: `\b(please add|would be (great|nice|awesome)|zou (mooi|fijn|geweldig) zijn)\b`, Weight: 0.8},
		{Label: "would_like", Pattern: `\b(would love|would like|i['’]?d love|i['’]?d like|zou graag|zou het fijn vinden)\b`, Weight: 0.6},
		{Label: "looking_for", Pattern: `\b(looking for|searching for|op zoek naar)\b`, Weight: 0.6},
		{Label: "hope", Pattern: `\b(hope|hoping|hoop|hopelijk)\b`, Weight: 0.5},
		{Label: "dream", Pattern: `\b(dream|ideal|droom|ideale?)\b`, Weight: 0.5},
		{Label: "need", Pattern: `\b(need|needs|nodig)\b`, Weight: 0.4},
		{Label: "should", Pattern: `\b(should (have|be)|zou moeten|had moeten)\b`, Weight: 0.4},
		{Label: "want", Pattern: `\b(want|wants|wanted|willen|wil)\b`, Weight: 0.3},
	}
}

// Category order is significant: the first matching rule wins.
func painCategories() []RuleSpec {
	return []RuleSpec{
		{Name: "price", Patterns: []string{`\b(price|prices|pricing|expensive|overpriced|costs?|money)\b`, `\b(prijs|prijzen|duur|dure|geld)\b`}},
		{Name: "photo_quality", Patterns: []string{`\b(photo|picture|camera|lens|blurry|selfie|zoom)`, `\b(foto|wazig|beeldkwaliteit)`}},
		{Name: "battery", Patterns: []string{`\b(battery|charging|charger|charge)`, `\b(batterij|accu|opladen|oplader|lader)`}},
		{Name: "performance", Patterns: []string{`\b(slow|laggy|lags?|crash\w*|freez\w*|froze)\b`, `\b(traag|langzaam|vastlopen|loopt vast|hapert)\b`}},
		{Name: "durability", Patterns: []string{`\b(broke|broken|scratch\w*|crack\w*|wear)`, `\b(kapot|stuk|kras|barst|slijt)`}},
		{Name: "usability", Patterns: []string{`\b(complicated|confusing|difficult|hard to use|unintuitive)\b`, `\b(ingewikkeld|onduidelijk|moeilijk|gebruiksonvriendelijk)\b`}},
		{Name: "customer_service", Patterns: []string{`\b(customer service|support|refund|helpdesk|return)`, `\b(klantenservice|terugbetaling|retour)`}},
		{Name: "shipping", Patterns: []string{`\b(shipping|delivery|delivered|package|arrived)`, `\b(levering|bezorging|geleverd|verzending|pakket)`}},
		{Name: "quality", Patterns: []string{`\b(quality|cheap|poor|flimsy|material)`, `\b(kwaliteit|goedkoop|slecht|materiaal)`}},
	}
}

func desireCategories() []RuleSpec {
	return []RuleSpec{
		{Name: "price", Patterns: []string{`\b(cheaper|affordable|budget|price|discount|deal)\b`, `\b(goedkoper|betaalbaar|prijs|korting)\b`}},
		{Name: "battery_life", Patterns: []string{`\b(battery|all day|lasts?|last longer|long-lasting|charge)`, `\b(batterij|accu|hele dag|meegaat|langer mee|opladen)`}},
		{Name: "camera", Patterns: []string{`\b(camera|photo|picture|lens|zoom)`, `\b(foto)`}},
		{Name: "performance", Patterns: []string{`\b(faster|fast|speed|snappy|smooth)\b`, `\b(sneller|snel|soepel)\b`}},
		{Name: "design", Patterns: []string{`\b(design|colou?r|beautiful|sleek|lighter|smaller|compact)\b`, `\b(kleur|mooi|lichter|kleiner)\b`}},
		{Name: "features", Patterns: []string{`\b(feature|option|support for|waterproof)`, `\b(functie|optie|ondersteuning|waterdicht)`}},
		{Name: "ease_of_use", Patterns: []string{`\b(easy|easier|simple|intuitive|user-friendly)\b`, `\b(makkelijk|eenvoudig|simpel|gebruiksvriendelijk)\b`}},
		{Name: "quality", Patterns: []string{`\b(quality|durable|sturdy|reliable)\b`, `\b(kwaliteit|duurzaam|stevig|betrouwbaar)\b`}},
	}
}

func vocabularies() map[Domain][]string {
	return map[Domain][]string{
		General: {
			"price", "quality", "value", "value for money", "good price", "good quality",
			"design", "size", "color", "colour", "delivery", "shipping", "customer service",
			"service", "support", "battery", "battery life", "material", "durability",
			"performance", "experience", "packaging", "warranty", "refund", "return policy",
			"setup", "instructions", "comfort", "noise", "weight", "screen",
			"camera", "sound", "app", "update", "prijs", "kwaliteit", "levering",
			"klantenservice", "batterij", "foto", "telefoon",
		},
		Ecommerce: {
			"price", "discount", "shipping", "free shipping", "delivery", "fast delivery",
			"return", "return policy", "refund", "customer service", "seller", "package",
			"packaging", "order", "tracking", "warranty", "coupon", "checkout", "stock",
			"value for money", "good price", "quality", "size", "fit",
			"battery life", "prijs", "korting", "levering", "bezorging", "verzending",
			"retour", "klantenservice", "pakket", "bestelling",
		},
		Beauty: {
			"skin", "skincare", "skin care", "moisturizer", "serum", "foundation", "concealer",
			"mascara", "lipstick", "shade", "texture", "scent", "fragrance", "sensitive skin",
			"dry skin", "oily skin", "acne", "breakouts", "sunscreen", "spf", "packaging",
			"price", "huid", "huidverzorging", "geur", "droge huid", "gevoelige huid",
		},
		Tech: {
			"battery", "battery life", "screen", "display", "camera", "photo quality",
			"processor", "performance", "storage", "memory", "charging", "fast charging",
			"charger", "bluetooth", "wifi", "software", "update", "app", "apps", "speaker",
			"sound quality", "keyboard", "touchscreen", "resolution", "refresh rate", "phone",
			"laptop", "tablet", "price", "telefoon", "foto", "batterij", "accu", "scherm",
			"opladen", "oplader", "prestaties",
		},
		Food: {
			"taste", "flavor", "flavour", "recipe", "ingredients", "portion", "portion size",
			"delivery", "fresh", "spicy", "sweet", "texture", "calories", "protein", "sugar",
			"organic", "vegan", "gluten-free", "gluten free", "price", "smaak", "recept",
			"vers", "portie", "ingrediënten",
		},
	}
}

// Checked in order; the first domain with a matching keyword wins.
func domainKeywords() []DomainKeywords {
	return []DomainKeywords{
		{Domain: Ecommerce, Keywords: []string{"shop", "store", "buy", "order", "amazon", "deal", "shipping", "webshop", "winkel", "kopen", "bestellen"}},
		{Domain: Beauty, Keywords: []string{"beauty", "makeup", "make-up", "skincare", "skin", "cosmetics", "lipstick", "serum", "huidverzorging"}},
		{Domain: Tech, Keywords: []string{"tech", "phone", "smartphone", "laptop", "tablet", "computer", "gadget", "software", "app", "iphone", "android", "telefoon"}},
		{Domain: Food, Keywords: []string{"food", "recipe", "restaurant", "cooking", "snack", "meal", "eten", "recept", "koken"}},
	}
}
