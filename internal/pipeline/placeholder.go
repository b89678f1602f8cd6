package pipeline

import "context"

// Placeholder produces a deterministic document without calling any external
// provider. It serves development runs without an API key and the end-to-end
// tests.
type Placeholder struct{}

func (Placeholder) Run(ctx context.Context, spec JobSpec) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	summary := "Experienced engineer with a track record of shipping reliable software."
	if spec.WorkHistory != "" {
		summary = spec.WorkHistory
	}

	return Document{
		Contact: Contact{
			Name:  "Applicant",
			Email: "applicant@example.com",
		},
		Headline: "Tailored Resume",
		Summary:  summary,
		Sections: []Section{
			{
				Title: "Experience",
				Items: []map[string]any{
					{
						"organization": "Previous Employer",
						"position":     "Software Engineer",
						"highlights":   []any{"Delivered projects on schedule", "Collaborated across teams"},
					},
				},
			},
		},
	}, nil
}

var _ Client = Placeholder{}
