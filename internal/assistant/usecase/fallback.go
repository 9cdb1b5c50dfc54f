package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkparthk/Buddy-AI/internal/assistant"
	"github.com/pkparthk/Buddy-AI/internal/model"
	"github.com/pkparthk/Buddy-AI/pkg/gemini"
)

// interpret handles queries no pattern claimed. Cheap offline knowledge is
// served first so common questions never spend API quota; everything else
// goes to the generative backend, and a backend failure still produces a
// usable answer.
func (uc *implUseCase) interpret(ctx context.Context, sc model.Scope, query string) assistant.CommandResult {
	if answer, ok := knowledgeAnswer(query); ok {
		return assistant.CommandResult{
			Success:       true,
			Message:       answer,
			Action:        actionAIInterpretation,
			OriginalQuery: query,
			Note:          noteOfflineKnowledge,
		}
	}

	reply, err := uc.llm.GenerateText(ctx, fmt.Sprintf(personaPrompt, query))
	if err != nil {
		if gemini.IsQuotaExceeded(err) {
			uc.l.Warnf(ctx, "interpret: quota exceeded, answering offline")
		} else {
			uc.l.Errorf(ctx, "interpret: backend failed: %v", err)
		}
		return assistant.CommandResult{
			Success:       true,
			Message:       enhancedFallback(query),
			Action:        actionAIInterpretation,
			OriginalQuery: query,
			Note:          noteEnhancedFallback,
		}
	}

	uc.sessions.Get(sc.SessionID).Append(query, reply)
	return assistant.CommandResult{
		Success:       true,
		Message:       reply,
		Action:        actionAIInterpretation,
		OriginalQuery: query,
	}
}

// knowledgeAnswer answers direct definition questions from the built-in
// knowledge base, before any API call.
func knowledgeAnswer(query string) (string, bool) {
	if !strings.Contains(query, "what is") && !strings.Contains(query, "define") && !strings.Contains(query, "explain") {
		return "", false
	}

	switch {
	case strings.Contains(query, "computer science"):
		return "Computer Science is the study of computational systems, algorithms, and the design of computer systems and their applications. It encompasses areas like programming, software engineering, data structures, algorithms, computer networks, cybersecurity, artificial intelligence, and human-computer interaction.", true
	case strings.Contains(query, "programming"):
		return "Programming is the process of creating computer software using programming languages. It involves writing instructions that tell a computer how to perform specific tasks or solve problems.", true
	case strings.Contains(query, "artificial intelligence"):
		return "Artificial Intelligence (AI) is the simulation of human intelligence by machines, enabling them to perform tasks that typically require human intelligence like learning, reasoning, and problem-solving.", true
	}
	return "", false
}

// curatedDeflection is the terminal answer when nothing in the curated
// table applies; enhancedFallback keys off it to detect a non-answer.
const curatedDeflection = "I'd love to help you with that! Unfortunately, my AI processing is temporarily limited, but I'm still here to assist. Could you try rephrasing your question or ask about something specific I might be able to help with?"

// curatedAnswer serves hand-written answers for common queries when the
// generative backend is unavailable.
func curatedAnswer(query string) string {
	switch {
	case strings.Contains(query, "artificial intelligence") || strings.Contains(query, "what is ai"):
		return "Artificial Intelligence (AI) is the simulation of human intelligence by machines. It involves creating computer systems that can perform tasks that typically require human intelligence, such as learning, reasoning, problem-solving, and understanding language."
	case strings.Contains(query, "machine learning"):
		return "Machine Learning is a subset of AI that enables computers to learn and improve from data without being explicitly programmed. It uses algorithms to identify patterns in data and make predictions or decisions."
	case strings.Contains(query, "computer science"):
		return "Computer Science is the study of computational systems, algorithms, and the design of computer systems and their applications. It encompasses areas like programming, software engineering, data structures, algorithms, computer networks, cybersecurity, artificial intelligence, and human-computer interaction. It's both a theoretical and practical field that drives technological innovation."
	case strings.Contains(query, "quantum computing"):
		return "Quantum computing uses quantum mechanical phenomena like superposition and entanglement to process information. Unlike classical computers that use bits (0 or 1), quantum computers use quantum bits (qubits) that can exist in multiple states simultaneously."
	case strings.Contains(query, "programming") && (strings.Contains(query, "learn") || strings.Contains(query, "how")):
		return "To learn programming: 1) Choose a beginner-friendly language like Python 2) Use online resources like Codecademy or freeCodeCamp 3) Practice with small projects 4) Build real applications 5) Join coding communities for support. Start with basics and practice regularly!"
	case strings.Contains(query, "write") && strings.Contains(query, "poem"):
		return "Here's a short poem for you:\n\nIn circuits bright and data streams,\nAI awakens digital dreams.\nThrough code and logic, swift and true,\nI'm here to help in all you do."
	case strings.Contains(query, "joke"):
		return "Why don't programmers like nature? It has too many bugs! \U0001F41B"
	case strings.Contains(query, "story") && strings.Contains(query, "robot"):
		return "Once there was a little robot named Buddy who loved helping people. Every day, Buddy would learn something new and use that knowledge to make someone's day a little brighter. Though made of circuits and code, Buddy had the biggest heart of all."
	case strings.Contains(query, "how are you"):
		return "I'm doing great, thanks for asking! Ready to help you with whatever you need. How are you doing today?"
	case strings.Contains(query, "what do you think about"):
		return "That's an interesting topic! I'd love to discuss it with you. What specific aspect would you like to explore?"
	case strings.Contains(query, "stressed"):
		return "I understand feeling stressed can be tough. Try taking deep breaths, going for a short walk, or doing something you enjoy. Sometimes talking about what's stressing you can help too. What's on your mind?"
	case strings.Contains(query, "productivity"):
		return "To improve productivity: 1) Set clear goals 2) Prioritize important tasks 3) Take regular breaks 4) Eliminate distractions 5) Use time-blocking techniques. What area of productivity would you like to focus on?"
	}
	return curatedDeflection
}

// enhancedFallback is the last line of defense for unmatched queries when
// the backend is down. It never returns an empty message.
func enhancedFallback(query string) string {
	if answer := curatedAnswer(query); answer != curatedDeflection {
		return answer
	}

	switch {
	case strings.Contains(query, "hello") || strings.Contains(query, "hi") || strings.Contains(query, "hey"):
		return "Hello! I'm Buddy, your AI assistant. How can I help you today?"
	case strings.Contains(query, "how are you"):
		return "I'm doing great, thanks for asking! I'm here and ready to help you with anything you need."
	case strings.Contains(query, "help") || strings.Contains(query, "assist"):
		return "I'm here to help! I can answer questions, provide information, help with calculations, get weather updates, open websites, and have conversations. What would you like to do?"
	case strings.Contains(query, "thank"):
		return "You're very welcome! I'm happy to help. Is there anything else you'd like to know?"
	}
	return "I'm here to help! While my advanced AI features are temporarily limited, I can still assist with weather, calculations, opening websites, and answering common questions. What would you like to know?"
}
