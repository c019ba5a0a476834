package chatbot

import (
	"strings"
	"unicode"
)

// Topic names the fallback rule that produced a reply.
type Topic string

const (
	TopicCrisis     Topic = "crisis"
	TopicAnxiety    Topic = "anxiety"
	TopicDepression Topic = "depression"
	TopicStress     Topic = "stress"
	TopicEvents     Topic = "events"
	TopicGreeting   Topic = "greeting"
	TopicDefault    Topic = "default"
)

// A rule's keywords are word stems: each keyword word matches any word
// starting with it. Rules marked exact only match whole words.
type rule struct {
	topic    Topic
	keywords []string
	exact    bool
	reply    string
}

// rules are checked in order; the first match wins, so crisis language
// always takes priority.
var rules = []rule{
	{
		topic:    TopicCrisis,
		keywords: []string{"suicid", "kill myself", "end my life"},
		reply: `I'm really worried about what you're going through. Please reach out for help right now:
National Suicide Prevention Lifeline: 988
Crisis Text Line: text HOME to 741741
Student Helpline: 1-800-273-8255
You don't have to carry this alone. Trained counsellors are available 24/7.`,
	},
	{
		topic:    TopicAnxiety,
		keywords: []string{"anxi", "worr"},
		reply: `It sounds like you're feeling anxious, and that's something many students experience. A few things that can help:
- Slow breathing: in for 4, hold for 4, out for 4
- A short walk or some light movement
- Writing down what's on your mind
- Talking to someone you trust
The Events page also lists workshops and support groups on managing anxiety.`,
	},
	{
		topic:    TopicDepression,
		keywords: []string{"depress", "sad"},
		reply: `I'm sorry you're feeling this way. Low mood is hard, and support is available:
- Talking with a counsellor or therapist
- Joining a peer support group
- Gentle exercise and time outdoors
- Keeping a regular sleep routine
MindConnect can connect you with verified mental health NGOs and counselling services whenever you're ready.`,
	},
	{
		topic:    TopicStress,
		keywords: []string{"stress", "overwhelm"},
		reply: `Stress can pile up quickly. Some ways to bring it down:
- Pick the one or two things that really need doing today
- Take regular short breaks
- Try a few minutes of mindfulness
- Split big tasks into small steps
- Talk to someone about how you're feeling
Have a look at the Events page for stress management workshops this week.`,
	},
	{
		topic:    TopicEvents,
		keywords: []string{"event", "workshop", "support group"},
		reply: `MindConnect hosts a range of wellness activities:
- Workshops on stress, mindfulness and coping skills
- Peer support groups
- Webinars with mental health professionals
- One-on-one counselling sessions
Every event is run by a verified NGO. Visit the Events page to see what's coming up.`,
	},
	{
		topic:    TopicGreeting,
		keywords: []string{"hello", "hi", "hey"},
		exact:    true,
		reply: `Hi, I'm Mira, your wellness companion. I'm here to listen.
How are you feeling today? Is there anything you'd like to talk about?`,
	},
}

const defaultReply = `Thank you for sharing that with me. I'm here to listen.
I'm an AI assistant, so for personal support I'd encourage you to:
- Explore our verified NGO partners
- Join an upcoming support group or workshop
- Reach out to a mental health professional
What would you like to know more about?`

// Fallback picks a canned reply for message by keyword. Topic stems match
// word prefixes, so "stressful" counts as stress, while greetings need the
// whole word so "hi" does not fire on "this".
func Fallback(message string) (string, Topic) {
	words := tokenize(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if containsPhrase(words, strings.Fields(kw), r.exact) {
				return r.reply, r.topic
			}
		}
	}
	return defaultReply, TopicDefault
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func containsPhrase(words, phrase []string, exact bool) bool {
	if len(phrase) == 0 {
		return false
	}
	for i := 0; i+len(phrase) <= len(words); i++ {
		match := true
		for j, p := range phrase {
			w := words[i+j]
			if !wordMatches(w, p, exact) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func wordMatches(word, keyword string, exact bool) bool {
	if exact {
		return word == keyword
	}
	return strings.HasPrefix(word, keyword)
}
