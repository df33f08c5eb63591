package knowledge

// Order matters: it decides which condition wins a tie.
var defaultConditions = []Condition{
	{
		Name:        "flu",
		Symptoms:    []string{"fever", "cough", "fatigue", "muscle_aches", "headache", "sore_throat", "runny_nose", "chills"},
		Risk:        RiskMedium,
		Description: "Influenza is a contagious respiratory illness caused by influenza viruses.",
		Recommendations: Recommendations{
			Immediate: []string{"Rest and stay hydrated", "Take fever reducers such as acetaminophen"},
			ShortTerm: []string{"Monitor temperature twice daily", "Stay home to avoid spreading the infection"},
			LongTerm:  []string{"Get an annual flu vaccine"},
		},
	},
	{
		Name:        "common_cold",
		Symptoms:    []string{"runny_nose", "sneezing", "sore_throat", "cough", "congestion", "headache"},
		Risk:        RiskLow,
		Description: "A viral infection of the nose and throat that usually resolves on its own.",
		Recommendations: Recommendations{
			Immediate: []string{"Rest and stay hydrated", "Use saline nasal spray"},
			ShortTerm: []string{"Use a humidifier", "Gargle with warm salt water"},
			LongTerm:  []string{"Wash hands frequently"},
		},
	},
	{
		Name:        "migraine",
		Symptoms:    []string{"headache", "nausea", "sensitivity_to_light", "dizziness", "blurred_vision"},
		Risk:        RiskMedium,
		Description: "A primary headache disorder with recurrent moderate to severe headaches.",
		Recommendations: Recommendations{
			Immediate: []string{"Rest in a dark, quiet room", "Apply a cold compress to the forehead"},
			ShortTerm: []string{"Track headache triggers", "Avoid bright screens"},
			LongTerm:  []string{"Keep a regular sleep schedule", "Discuss preventive treatment with a doctor"},
		},
	},
	{
		Name:        "tension_headache",
		Symptoms:    []string{"headache", "neck_pain", "fatigue"},
		Risk:        RiskLow,
		Description: "A mild to moderate band-like headache often linked to stress or posture.",
		Recommendations: Recommendations{
			Immediate: []string{"Take an over-the-counter pain reliever"},
			ShortTerm: []string{"Stretch the neck and shoulders", "Take regular screen breaks"},
			LongTerm:  []string{"Practice stress management", "Keep a regular sleep schedule"},
		},
	},
	{
		Name:        "covid19",
		Symptoms:    []string{"fever", "cough", "fatigue", "shortness_of_breath", "loss_of_taste", "loss_of_smell", "headache", "sore_throat"},
		Risk:        RiskHigh,
		Description: "A respiratory illness caused by the SARS-CoV-2 coronavirus.",
		Recommendations: Recommendations{
			Immediate: []string{"Self-isolate from others", "Take a COVID-19 test"},
			ShortTerm: []string{"Monitor oxygen saturation", "Monitor temperature twice daily"},
			LongTerm:  []string{"Stay up to date with COVID-19 vaccination"},
		},
	},
	{
		Name:        "strep_throat",
		Symptoms:    []string{"sore_throat", "fever", "swollen_lymph_nodes", "headache"},
		Risk:        RiskMedium,
		Description: "A bacterial throat infection that can require antibiotics.",
		Recommendations: Recommendations{
			Immediate: []string{"Gargle with warm salt water"},
			ShortTerm: []string{"See a doctor for a throat swab"},
			LongTerm:  []string{"Replace your toothbrush after recovery"},
		},
	},
	{
		Name:        "pneumonia",
		Symptoms:    []string{"fever", "cough", "shortness_of_breath", "chest_pain", "chills", "fatigue"},
		Risk:        RiskHigh,
		Description: "An infection that inflames the air sacs in one or both lungs.",
		Recommendations: Recommendations{
			Immediate: []string{"Contact a doctor today"},
			ShortTerm: []string{"Complete any prescribed antibiotics", "Monitor oxygen saturation"},
			LongTerm:  []string{"Ask about the pneumococcal vaccine", "Avoid smoking"},
		},
	},
	{
		Name:        "bronchitis",
		Symptoms:    []string{"cough", "fatigue", "shortness_of_breath", "chest_pain"},
		Risk:        RiskMedium,
		Description: "Inflammation of the lining of the bronchial tubes.",
		Recommendations: Recommendations{
			Immediate: []string{"Rest and stay hydrated"},
			ShortTerm: []string{"Use a humidifier", "Avoid smoke and fumes"},
			LongTerm:  []string{"Avoid smoking"},
		},
	},
	{
		Name:        "gastroenteritis",
		Symptoms:    []string{"nausea", "vomiting", "diarrhea", "abdominal_pain", "fever"},
		Risk:        RiskMedium,
		Description: "Inflammation of the stomach and intestines, usually from an infection.",
		Recommendations: Recommendations{
			Immediate: []string{"Drink oral rehydration solution"},
			ShortTerm: []string{"Eat bland foods", "Avoid dairy and caffeine"},
			LongTerm:  []string{"Wash hands frequently"},
		},
	},
	{
		Name:        "food_poisoning",
		Symptoms:    []string{"nausea", "vomiting", "diarrhea", "abdominal_pain"},
		Risk:        RiskMedium,
		Description: "Illness caused by eating contaminated food.",
		Recommendations: Recommendations{
			Immediate: []string{"Drink oral rehydration solution"},
			ShortTerm: []string{"Eat bland foods"},
			LongTerm:  []string{"Follow safe food handling practices"},
		},
	},
	{
		Name:        "allergies",
		Symptoms:    []string{"sneezing", "runny_nose", "itchy_eyes", "congestion"},
		Risk:        RiskLow,
		Description: "An immune reaction to substances such as pollen, dust or pet dander.",
		Recommendations: Recommendations{
			Immediate: []string{"Take an antihistamine"},
			ShortTerm: []string{"Keep windows closed during high pollen days"},
			LongTerm:  []string{"Ask about allergy testing"},
		},
	},
	{
		Name:        "sinusitis",
		Symptoms:    []string{"congestion", "headache", "facial_pain", "runny_nose"},
		Risk:        RiskLow,
		Description: "Inflammation of the sinuses, often following a cold.",
		Recommendations: Recommendations{
			Immediate: []string{"Use saline nasal spray"},
			ShortTerm: []string{"Apply warm compresses to the face"},
			LongTerm:  []string{"See a doctor if symptoms last longer than 10 days"},
		},
	},
	{
		Name:        "hypertension",
		Symptoms:    []string{"headache", "dizziness", "blurred_vision", "chest_pain"},
		Risk:        RiskHigh,
		Description: "Persistently elevated blood pressure.",
		Recommendations: Recommendations{
			Immediate: []string{"Check your blood pressure"},
			ShortTerm: []string{"Reduce salt intake", "Limit alcohol"},
			LongTerm:  []string{"Monitor blood pressure regularly", "Exercise regularly"},
		},
	},
	{
		Name:        "heart_attack",
		Symptoms:    []string{"chest_pain", "shortness_of_breath", "nausea", "dizziness", "arm_pain"},
		Risk:        RiskHigh,
		Description: "Blocked blood flow to the heart muscle.",
		Recommendations: Recommendations{
			Immediate: []string{SeekCareNow, "Call emergency services"},
			ShortTerm: []string{"Follow up with a cardiologist"},
			LongTerm:  []string{"Follow a heart-healthy diet", "Exercise regularly"},
		},
	},
	{
		Name:        "anxiety",
		Symptoms:    []string{"rapid_heartbeat", "shortness_of_breath", "dizziness", "fatigue"},
		Risk:        RiskLow,
		Description: "Excessive worry or fear that can cause physical symptoms.",
		Recommendations: Recommendations{
			Immediate: []string{"Practice slow breathing"},
			ShortTerm: []string{"Limit caffeine"},
			LongTerm:  []string{"Practice stress management", "Consider talking to a counselor"},
		},
	},
	{
		Name:        "uti",
		Symptoms:    []string{"painful_urination", "frequent_urination", "abdominal_pain", "fever"},
		Risk:        RiskMedium,
		Description: "An infection in any part of the urinary system.",
		Recommendations: Recommendations{
			Immediate: []string{"Drink plenty of water"},
			ShortTerm: []string{"See a doctor for a urine test"},
			LongTerm:  []string{"Stay well hydrated every day"},
		},
	},
	{
		Name:        "diabetes",
		Symptoms:    []string{"frequent_urination", "excessive_thirst", "fatigue", "blurred_vision"},
		Risk:        RiskMedium,
		Description: "A condition that affects how the body regulates blood sugar.",
		Recommendations: Recommendations{
			Immediate: []string{"Check your blood glucose"},
			ShortTerm: []string{"Schedule a blood sugar test with a doctor"},
			LongTerm:  []string{"Follow a balanced diet", "Exercise regularly"},
		},
	},
}

// SeekCareNow is appended to immediate advice whenever risk is high.
// Callers match on it, so the text stays fixed.
const SeekCareNow = "seek immediate medical attention"

// Default builds the bundled knowledge base.
func Default() *Base {
	b, err := New(defaultConditions)
	if err != nil {
		panic("knowledge: bundled table is invalid: " + err.Error())
	}
	return b
}
