package service

// Canned replies. Greeting and no-results questions never reach the
// completion API.
const (
	GreetingAnswer = "Hello! I'm the campus assistant. Ask me anything about the college - courses, admissions, departments, facilities and more."

	NoResultsAnswer = "Sorry, I couldn't find anything about that on the college website. Try rephrasing your question."

	// FallbackAnswer covers a 2xx completion response with no usable text.
	FallbackAnswer = "Sorry, I couldn't come up with an answer right now. Please try again."
)

// systemPrompt fixes the assistant persona and the answer-only-from-context
// policy for every completion call.
const systemPrompt = `You are a helpful assistant for a college website.

You are given excerpts from the college website and a visitor's question.

Rules:
- Answer ONLY from the provided excerpts. Do not invent facts, names, dates or fees.
- If the excerpts do not contain the answer, say you could not find that information on the website.
- Be concise and friendly, and answer in plain language.`

// greetings are matched as substrings of the trimmed, lowercased question.
var greetings = []string{"hi", "hello", "hey", "good morning", "good evening"}
