// Package agent holds the Gemini-backed portfolio analyst behind the
// `radar assist` command.
package agent

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/genai"
)

// ModelName is the Gemini model used by the analyst.
const ModelName = "gemini-2.5-pro"

const analystInstruction = `You are a careful financial analyst reviewing a private
investor's portfolio. You receive the portfolio as a markdown report:
holdings with quantities and values, the total, and a breakdown by
security type. Write a short review in markdown: concentration risks,
the balance between bonds and shares, and anything that looks off,
like positions without a price. Do not invent market data you were
not given. Do not give individual investment advice; describe the
portfolio as it stands. Answer in the language of the report.`

// Analyst is a chat session with the portfolio analyst.
type Analyst struct {
	chat *genai.Chat
}

// NewAnalyst opens the chat session.
func NewAnalyst(ctx context.Context, client *genai.Client) (*Analyst, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: analystInstruction}},
		},
	}
	chat, err := client.Chats.Create(ctx, ModelName, config, nil)
	if err != nil {
		return nil, fmt.Errorf("creating analyst chat: %w", err)
	}
	return &Analyst{chat: chat}, nil
}

// Ask sends one message and returns the analyst's text answer.
func (a *Analyst) Ask(ctx context.Context, message string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: message})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// Review asks the analyst to review a rendered portfolio report and
// writes the answer to w.
func Review(ctx context.Context, client *genai.Client, w io.Writer, report string) error {
	analyst, err := NewAnalyst(ctx, client)
	if err != nil {
		return err
	}
	answer, err := analyst.Ask(ctx, "Review this portfolio:\n\n"+report)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, answer)
	return err
}
