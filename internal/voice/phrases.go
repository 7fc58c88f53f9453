package voice

// Supported language tags. These match the locale picker on the client
// (en-IN, hi-IN, ta-IN, te-IN).
const (
	LanguageEnglish = "english"
	LanguageHindi   = "hindi"
	LanguageTamil   = "tamil"
	LanguageTelugu  = "telugu"
)

type phraseEntry struct {
	phrase   string
	action   string
	target   string
	response string
}

// phraseTables hold ordered phrase entries per language. Slices, not
// maps: declaration order IS the precedence rule, and matching is
// plain substring containment, so entries must stay in this order.
var phraseTables = map[string][]phraseEntry{
	LanguageEnglish: {
		{"check symptoms", ActionNavigate, "/ai-checker", "Opening the symptom checker"},
		{"symptom", ActionNavigate, "/ai-checker", "Opening the symptom checker"},
		{"dashboard", ActionNavigate, "/dashboard", "Opening the dashboard"},
		{"home", ActionNavigate, "/dashboard", "Opening the dashboard"},
		{"appointment", ActionNavigate, "/appointments", "Opening appointments"},
		{"patient", ActionNavigate, "/patients", "Opening patient management"},
		{"medical record", ActionNavigate, "/records", "Opening medical records"},
		{"record", ActionNavigate, "/records", "Opening medical records"},
		{"prescription", ActionNavigate, "/records", "Opening medical records"},
		{"lab test", ActionNavigate, "/lab-tests", "Opening lab tests"},
		{"lab report", ActionNavigate, "/lab-tests", "Opening lab tests"},
		{"emergency", ActionEmergency, EmergencyTarget, "Calling 108 Emergency Services"},
		{"ambulance", ActionEmergency, EmergencyTarget, "Calling 108 Emergency Services"},
		{"help me", ActionEmergency, EmergencyTarget, "Calling 108 Emergency Services"},
	},
	LanguageHindi: {
		{"लक्षण", ActionNavigate, "/ai-checker", "लक्षण जांचकर्ता खोल रहे हैं"},
		{"डैशबोर्ड", ActionNavigate, "/dashboard", "डैशबोर्ड खोल रहे हैं"},
		{"अपॉइंटमेंट", ActionNavigate, "/appointments", "अपॉइंटमेंट खोल रहे हैं"},
		{"नियुक्ति", ActionNavigate, "/appointments", "अपॉइंटमेंट खोल रहे हैं"},
		{"मरीज", ActionNavigate, "/patients", "मरीज प्रबंधन खोल रहे हैं"},
		{"रिकॉर्ड", ActionNavigate, "/records", "मेडिकल रिकॉर्ड खोल रहे हैं"},
		{"दवा", ActionNavigate, "/records", "मेडिकल रिकॉर्ड खोल रहे हैं"},
		{"जांच", ActionNavigate, "/lab-tests", "लैब टेस्ट खोल रहे हैं"},
		{"लैब", ActionNavigate, "/lab-tests", "लैब टेस्ट खोल रहे हैं"},
		{"आपातकाल", ActionEmergency, EmergencyTarget, "108 आपातकालीन सेवा बुला रहे हैं"},
		{"एम्बुलेंस", ActionEmergency, EmergencyTarget, "108 आपातकालीन सेवा बुला रहे हैं"},
		{"मदद", ActionEmergency, EmergencyTarget, "108 आपातकालीन सेवा बुला रहे हैं"},
	},
	LanguageTamil: {
		{"அறிகுறி", ActionNavigate, "/ai-checker", "அறிகுறி சரிபார்ப்பு திறக்கிறது"},
		{"முகப்பு", ActionNavigate, "/dashboard", "டாஷ்போர்டு திறக்கிறது"},
		{"டாஷ்போர்டு", ActionNavigate, "/dashboard", "டாஷ்போர்டு திறக்கிறது"},
		{"சந்திப்பு", ActionNavigate, "/appointments", "சந்திப்புகள் திறக்கிறது"},
		{"நோயாளி", ActionNavigate, "/patients", "நோயாளி மேலாண்மை திறக்கிறது"},
		{"பதிவு", ActionNavigate, "/records", "மருத்துவ பதிவுகள் திறக்கிறது"},
		{"மருந்து", ActionNavigate, "/records", "மருத்துவ பதிவுகள் திறக்கிறது"},
		{"பரிசோதனை", ActionNavigate, "/lab-tests", "ஆய்வக பரிசோதனைகள் திறக்கிறது"},
		{"அவசரம்", ActionEmergency, EmergencyTarget, "108 அவசர சேவையை அழைக்கிறோம்"},
		{"ஆம்புலன்ஸ்", ActionEmergency, EmergencyTarget, "108 அவசர சேவையை அழைக்கிறோம்"},
		{"உதவி", ActionEmergency, EmergencyTarget, "108 அவசர சேவையை அழைக்கிறோம்"},
	},
	LanguageTelugu: {
		{"లక్షణ", ActionNavigate, "/ai-checker", "లక్షణాల తనిఖీ తెరుస్తున్నాం"},
		{"డాష్‌బోర్డ్", ActionNavigate, "/dashboard", "డాష్‌బోర్డ్ తెరుస్తున్నాం"},
		{"అపాయింట్", ActionNavigate, "/appointments", "అపాయింట్‌మెంట్లు తెరుస్తున్నాం"},
		{"రోగి", ActionNavigate, "/patients", "రోగుల నిర్వహణ తెరుస్తున్నాం"},
		{"రికార్డు", ActionNavigate, "/records", "వైద్య రికార్డులు తెరుస్తున్నాం"},
		{"మందు", ActionNavigate, "/records", "వైద్య రికార్డులు తెరుస్తున్నాం"},
		{"పరీక్ష", ActionNavigate, "/lab-tests", "ల్యాబ్ పరీక్షలు తెరుస్తున్నాం"},
		{"అత్యవసరం", ActionEmergency, EmergencyTarget, "108 అత్యవసర సేవలను పిలుస్తున్నాం"},
		{"అంబులెన్స్", ActionEmergency, EmergencyTarget, "108 అత్యవసర సేవలను పిలుస్తున్నాం"},
		{"సహాయం", ActionEmergency, EmergencyTarget, "108 అత్యవసర సేవలను పిలుస్తున్నాం"},
	},
}

var emergencyResponses = map[string]string{
	LanguageEnglish: "Calling 108 Emergency Services",
	LanguageHindi:   "108 आपातकालीन सेवा बुला रहे हैं",
	LanguageTamil:   "108 அவசர சேவையை அழைக்கிறோம்",
	LanguageTelugu:  "108 అత్యవసర సేవలను పిలుస్తున్నాం",
}

var notUnderstoodMessages = map[string]string{
	LanguageEnglish: "Sorry, I didn't understand that. Try saying 'open dashboard' or 'check symptoms'.",
	LanguageHindi:   "माफ़ कीजिए, मैं समझ नहीं पाया। 'डैशबोर्ड खोलें' या 'लक्षण जांचें' कहकर देखें।",
	LanguageTamil:   "மன்னிக்கவும், எனக்கு புரியவில்லை. 'முகப்பு' அல்லது 'அறிகுறி' என்று சொல்லி பாருங்கள்.",
	LanguageTelugu:  "క్షమించండి, నాకు అర్థం కాలేదు. 'డాష్‌బోర్డ్' లేదా 'లక్షణ' అని చెప్పి చూడండి.",
}
