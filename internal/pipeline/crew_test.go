package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedChat struct {
	responses []string
	calls     int
	seen      []Message
	err       error
}

func (s *scriptedChat) Complete(ctx context.Context, messages []Message) (string, error) {
	s.seen = append(s.seen, messages...)
	if s.err != nil {
		return "", s.err
	}
	if s.calls >= len(s.responses) {
		return "", errors.New("no scripted response")
	}
	out := s.responses[s.calls]
	s.calls++
	return out, nil
}

const finalDocument = `{
  "contact": {"name": "Ada Lovelace", "email": "ada@example.com", "links": ["github.com/ada"]},
  "headline": "Backend Engineer",
  "summary": "Builds reliable services.",
  "sections": [{"title": "Experience", "items": [{"organization": "Analytical Engines", "position": "Engineer"}]}]
}`

func newTestCrew(t *testing.T, chat ChatClient) *Crew {
	t.Helper()
	cfg, err := LoadCrewConfig()
	require.NoError(t, err)
	// No fetcher: the job link is passed through verbatim.
	return &Crew{Config: cfg, Chat: chat}
}

func TestCrewRunsTasksInOrder(t *testing.T) {
	chat := &scriptedChat{responses: []string{
		"Required skills: Go, SQL.",
		"Profile: ten years of backend work.",
		"```json\n" + finalDocument + "\n```",
	}}
	crew := newTestCrew(t, chat)

	doc, err := crew.Run(context.Background(), JobSpec{
		JobLink:     "https://example.com/job/1",
		WorkHistory: "Ten years at Analytical Engines.",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, chat.calls)
	assert.Equal(t, "Ada Lovelace", doc.Contact.Name)
	assert.Equal(t, "Backend Engineer", doc.Headline)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Experience", doc.Sections[0].Title)
}

func TestCrewChainsTaskOutputs(t *testing.T) {
	chat := &scriptedChat{responses: []string{
		"RESEARCH-OUTPUT",
		"PROFILE-OUTPUT",
		finalDocument,
	}}
	crew := newTestCrew(t, chat)

	_, err := crew.Run(context.Background(), JobSpec{JobLink: "https://example.com/job/1"})
	require.NoError(t, err)

	// The final task's user message must carry both earlier outputs.
	last := chat.seen[len(chat.seen)-1]
	assert.Contains(t, last.Content, "RESEARCH-OUTPUT")
	assert.Contains(t, last.Content, "PROFILE-OUTPUT")
}

func TestCrewInterpolatesInputs(t *testing.T) {
	chat := &scriptedChat{responses: []string{"a", "b", finalDocument}}
	crew := newTestCrew(t, chat)

	_, err := crew.Run(context.Background(), JobSpec{
		JobLink:    "https://example.com/job/42",
		ResumeText: "RESUME-TEXT-MARKER",
	})
	require.NoError(t, err)

	// research task sees the link, profile task sees the resume text
	assert.Contains(t, chat.seen[1].Content, "https://example.com/job/42")
	assert.Contains(t, chat.seen[3].Content, "RESUME-TEXT-MARKER")
	assert.NotContains(t, chat.seen[1].Content, "{job_posting}")
	assert.NotContains(t, chat.seen[3].Content, "{resume_text}")
}

type recordingFetcher struct {
	calls []string
	text  string
}

func (r *recordingFetcher) Fetch(ctx context.Context, link string) (string, error) {
	r.calls = append(r.calls, link)
	return r.text, nil
}

func TestCrewTopicReferenceSkipsFetch(t *testing.T) {
	chat := &scriptedChat{responses: []string{"a", "b", finalDocument}}
	crew := newTestCrew(t, chat)
	fetcher := &recordingFetcher{text: "POSTING-TEXT"}
	crew.Fetcher = fetcher

	_, err := crew.Run(context.Background(), JobSpec{JobLink: "Backend Engineer at Acme"})
	require.NoError(t, err)

	// Free-text references go straight into the prompt, never to the scraper.
	assert.Empty(t, fetcher.calls)
	assert.Contains(t, chat.seen[1].Content, "Backend Engineer at Acme")
}

func TestCrewFetchesLinkReference(t *testing.T) {
	chat := &scriptedChat{responses: []string{"a", "b", finalDocument}}
	crew := newTestCrew(t, chat)
	fetcher := &recordingFetcher{text: "POSTING-TEXT"}
	crew.Fetcher = fetcher

	_, err := crew.Run(context.Background(), JobSpec{JobLink: "https://example.com/job/1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.com/job/1"}, fetcher.calls)
	assert.Contains(t, chat.seen[1].Content, "POSTING-TEXT")
}

func TestCrewProviderErrorIsPipelineFailure(t *testing.T) {
	chat := &scriptedChat{err: errors.New("provider down")}
	crew := newTestCrew(t, chat)

	_, err := crew.Run(context.Background(), JobSpec{JobLink: "https://example.com/job/1"})
	assert.ErrorIs(t, err, ErrPipelineFailure)
}

func TestCrewMalformedDocumentIsPipelineFailure(t *testing.T) {
	chat := &scriptedChat{responses: []string{"a", "b", "not json at all"}}
	crew := newTestCrew(t, chat)

	_, err := crew.Run(context.Background(), JobSpec{JobLink: "https://example.com/job/1"})
	assert.ErrorIs(t, err, ErrPipelineFailure)
}

func TestLoadCrewConfig(t *testing.T) {
	cfg, err := LoadCrewConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"research", "profile", "tailor"}, cfg.Order)
	for _, name := range cfg.Order {
		task := cfg.Tasks[name]
		assert.NotEmpty(t, task.Description, name)
		assert.NotEmpty(t, cfg.Agents[task.Agent].Role, name)
	}
}
