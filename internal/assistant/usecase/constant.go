package usecase

// Action tags identify which handler produced a result.
const (
	actionIncompleteQuery   = "incomplete_query"
	actionIncompleteWeather = "incomplete_weather_query"
	actionError             = "error"
	actionResetChat         = "reset_chat"

	actionGreeting         = "greeting_response"
	actionIdentity         = "identity_response"
	actionDirectOpen       = "direct_open"
	actionAIDirectOpen     = "ai_direct_open"
	actionWeatherInfo      = "weather_info"
	actionAIConversation   = "ai_conversation"
	actionCalculation      = "calculation"
	actionWebSearch        = "web_search"
	actionSystemControl    = "system_control"
	actionMediaControl     = "media_control"
	actionInformation      = "information"
	actionTimeInfo         = "time_info"
	actionDateInfo         = "date_info"
	actionNewsInfo         = "news_info"
	actionBatteryInfo      = "battery_info"
	actionMemoryInfo       = "memory_info"
	actionCPUInfo          = "cpu_info"
	actionDiskInfo         = "disk_info"
	actionSystemInfo       = "system_info"
	actionAIInterpretation = "ai_interpretation"
)

// Degradation notes attached to fallback answers.
const (
	noteOfflineKnowledge = "Using offline knowledge base"
	noteQuotaFallback    = "Using offline fallback due to API limits"
	noteOfflineFallback  = "Using offline fallback"
	noteEnhancedFallback = "Using enhanced offline responses"
)

// Guidance messages.
const (
	msgIncompleteQuery   = "I'm here to help! What would you like to know?"
	msgIncompleteWeather = "I'd be happy to help you get the temperature! Please specify a city. For example: 'What is the temperature of Mumbai?' or 'Temperature in Delhi'"
	msgChatReset         = "Chat has been reset."
)

// greetingResponses answers exact greeting phrasings; anything else in the
// category gets greetingDefault.
var greetingResponses = map[string]string{
	"hi":                    "Hi there! How can I help you today?",
	"hello":                 "Hello! What can I do for you?",
	"hey":                   "Hey! How's it going? What do you need help with?",
	"good morning":          "Good morning! Hope you're having a great day. How can I assist you?",
	"good afternoon":        "Good afternoon! What can I help you with today?",
	"good evening":          "Good evening! How can I make your evening better?",
	"how are you":           "I'm doing great, thanks for asking! How are you doing today?",
	"how are you doing":     "I'm doing wonderful, thanks! How about you?",
	"how are you doing today": "I'm having a fantastic day, thank you! How has your day been?",
	"how is your day":       "My day is going great, thanks for asking! How's yours going?",
	"how's your day":        "My day is going great, thanks for asking! How's yours going?",
	"how is it going":       "Things are going really well, thanks! How are things with you?",
	"how's it going":        "Things are going really well, thanks! How are things with you?",
	"what's up":             "Not much, just here ready to help! What's up with you?",
	"sup":                   "Hey! Not much, just ready to assist. What do you need?",
}

const greetingDefault = "Hello! How can I help you today?"

var identityResponses = map[string]string{
	"who are you":                  "I am Buddy, your personal intelligent assistant. I can help you with a variety of tasks, including web searches, opening applications, providing information, and general assistance.",
	"what is your name":            "My name is Buddy. I'm your personal AI assistant.",
	"what's your name":             "My name is Buddy. I'm your personal AI assistant.",
	"what are you called":          "I am called Buddy.",
	"tell me about yourself":       "I am Buddy, an advanced personal assistant designed to help you with various tasks. I can open websites, search for information, control applications, answer questions, and much more. Think of me as your digital companion ready to assist with whatever you need.",
	"what is your identity":        "I am Buddy, your personal AI assistant.",
	"introduce yourself":           "Hello! I'm Buddy, your personal intelligent assistant. I'm here to help you navigate the web, find information, control your system, and assist with various tasks. Just tell me what you need, and I'll do my best to help!",
	"who am i talking to":          "You're talking to Buddy, your personal assistant.",
	"who am i speaking to":         "You're speaking to Buddy, your personal assistant.",
	"who am i speaking with":       "You're speaking with Buddy, your personal assistant.",
	"who am i talking with":        "You're talking with Buddy, your personal assistant.",
	"what kind of ai are you":      "I am Buddy, a personal AI assistant designed to help with web browsing, information retrieval, system control, and general assistance.",
	"what kind of assistant are you": "I am Buddy, a personal AI assistant designed to help with web browsing, information retrieval, system control, and general assistance.",
}

const identityDefault = "I am Buddy, your personal intelligent assistant. I'm here to help you with various tasks including web searches, opening applications, providing information, and much more."

// websiteDecisionPrompt asks the model to classify an unknown open-target.
// The reply is untrusted free text; parseDecision handles it defensively.
const websiteDecisionPrompt = `The user said: "%s"
They want to open: "%s"

Based on this request, determine the most likely action:
1. If it's clearly a website name (even if misspelled), provide the correct URL
2. If it's an application name, suggest opening the application
3. If it's ambiguous, make the best guess

Respond with just the action in this format:
ACTION: [website|application|search]
URL: [the URL to open or application name]
MESSAGE: [what to tell the user]

Example responses:
ACTION: website
URL: https://www.youtube.com
MESSAGE: Opening YouTube

ACTION: application
URL: notepad.exe
MESSAGE: Opening Notepad`

// personaPrompt frames unmatched queries for the generative backend.
const personaPrompt = `You are Buddy AI, a helpful personal assistant. The user just said: "%s"

Please respond naturally and directly to the user as if you're having a conversation.

Guidelines:
- Give direct, conversational responses - no meta-commentary about what the user is asking
- If it's a greeting (like "how are you"), respond warmly and personally
- If it's a question about you, answer directly about being Buddy AI
- If it's a request you can't fulfill, politely explain and offer alternatives
- If it's a casual conversation, be friendly and engaging
- Always respond as Buddy AI speaking directly to the user

Do NOT say things like "The user's statement..." or "This is a request to..." - just respond naturally.`

// calculationPrompt forwards expressions the arithmetic arms cannot solve.
const calculationPrompt = "Calculate or solve this math problem and provide just the answer with a brief explanation: %s"
