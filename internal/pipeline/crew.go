package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"tailormake-backend/internal/shared/telemetry"
)

// Crew executes the configured tasks sequentially against a chat provider,
// feeding each task's output into the next as context.
type Crew struct {
	Config  CrewConfig
	Chat    ChatClient
	Fetcher PostingFetcher
}

func NewCrew(chat ChatClient) (*Crew, error) {
	cfg, err := LoadCrewConfig()
	if err != nil {
		return nil, err
	}
	return &Crew{Config: cfg, Chat: chat, Fetcher: NewCollyFetcher()}, nil
}

func (c *Crew) Run(ctx context.Context, spec JobSpec) (Document, error) {
	inputs := c.buildInputs(ctx, spec)

	var previous []string
	var final string
	for _, name := range c.Config.Order {
		task := c.Config.Tasks[name]
		agent := c.Config.Agents[task.Agent]

		started := time.Now()
		output, err := c.runTask(ctx, agent, task, inputs, previous)
		if err != nil {
			return Document{}, fmt.Errorf("%w: task %s: %v", ErrPipelineFailure, name, err)
		}
		telemetry.Info("pipeline task completed", map[string]any{
			"task":       name,
			"elapsed_ms": time.Since(started).Milliseconds(),
		})
		previous = append(previous, fmt.Sprintf("[%s]\n%s", name, output))
		final = output
	}

	var doc Document
	if err := json.Unmarshal([]byte(ExtractJSON(final)), &doc); err != nil {
		return Document{}, fmt.Errorf("%w: parse document: %v", ErrPipelineFailure, err)
	}
	return doc, nil
}

func (c *Crew) runTask(ctx context.Context, agent Agent, task Task, inputs map[string]string, previous []string) (string, error) {
	system := fmt.Sprintf("You are a %s.\nGoal: %s\n%s",
		strings.TrimSpace(agent.Role),
		strings.TrimSpace(agent.Goal),
		strings.TrimSpace(agent.Backstory),
	)

	var user strings.Builder
	user.WriteString(interpolate(task.Description, inputs))
	user.WriteString("\n\nExpected output:\n")
	user.WriteString(strings.TrimSpace(task.ExpectedOutput))
	if len(previous) > 0 {
		user.WriteString("\n\nContext from previous steps:\n")
		user.WriteString(strings.Join(previous, "\n\n"))
	}

	return c.Chat.Complete(ctx, []Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user.String()},
	})
}

// buildInputs resolves the {placeholder} slots. The job posting is fetched
// best-effort when the reference is an http(s) URL; topic text and failed
// fetches pass the reference through as-is so the run still proceeds.
func (c *Crew) buildInputs(ctx context.Context, spec JobSpec) map[string]string {
	posting := spec.JobLink
	if c.Fetcher != nil && isHTTPURL(spec.JobLink) {
		if text, err := c.Fetcher.Fetch(ctx, spec.JobLink); err == nil && text != "" {
			posting = text
		} else if err != nil {
			telemetry.Info("job posting fetch failed, using link as-is", map[string]any{
				"error": err.Error(),
			})
		}
	}

	links := spec.GitHubURL
	return map[string]string{
		"job_posting":  orNone(posting),
		"resume_text":  orNone(spec.ResumeText),
		"work_history": orNone(spec.WorkHistory),
		"links":        orNone(links),
		"writeup":      orNone(spec.Writeup),
	}
}

// isHTTPURL reports whether the job reference is a fetchable link rather than
// free-form topic text.
func isHTTPURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(not provided)"
	}
	return s
}

func interpolate(template string, inputs map[string]string) string {
	out := template
	for key, value := range inputs {
		out = strings.ReplaceAll(out, "{"+key+"}", value)
	}
	return out
}

var _ Client = (*Crew)(nil)
