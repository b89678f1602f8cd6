package pipeline

import "context"

// ErrPipelineFailure wraps any generation failure so the API layer can map it
// to a gateway error without inspecting provider internals.
var ErrPipelineFailure = errPipelineFailure{}

type errPipelineFailure struct{}

func (errPipelineFailure) Error() string { return "pipeline failure" }

// JobSpec is the input handed to the generation pipeline. JobLink carries the
// job reference: a posting URL, or free-text like "Backend Engineer at Acme"
// when the client supplied only a topic.
type JobSpec struct {
	JobLink     string
	WorkHistory string
	ResumeText  string
	GitHubURL   string
	Writeup     string
}

// Contact is the applicant identity block of a generated document.
type Contact struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Location string   `json:"location"`
	Links    []string `json:"links"`
}

// Section is a titled group of resume entries. Items are free-form maps; the
// renderer decides layout from the keys present.
type Section struct {
	Title string           `json:"title"`
	Items []map[string]any `json:"items"`
}

// Document is the structured tailored resume produced by the pipeline.
type Document struct {
	Contact  Contact   `json:"contact"`
	Headline string    `json:"headline"`
	Summary  string    `json:"summary"`
	Sections []Section `json:"sections"`
}

// Client runs the tailoring pipeline. The call is synchronous and may take a
// long time; callers decide whether to bound it with a context deadline.
type Client interface {
	Run(ctx context.Context, spec JobSpec) (Document, error)
}

// Message is a single chat turn sent to a language-model provider.
type Message struct {
	Role    string
	Content string
}

// ChatClient is the provider seam the crew runs against.
type ChatClient interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
