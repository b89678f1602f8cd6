package tailoring

// tailorRequest is the intake payload for a tailoring run. Every field is
// optional; the pipeline works with whatever material is present.
type tailorRequest struct {
	Topic          string        `json:"topic"`
	WorkExperience string        `json:"workExperience"`
	JobLink        string        `json:"jobLink"`
	Resume         *resumeUpload `json:"resume"`
}

// resumeUpload carries an uploaded resume as base64, optionally wrapped in a
// data URL.
type resumeUpload struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Base64 string `json:"base64"`
}

type tailorResult struct {
	ID        string `json:"id"`
	Filename  string `json:"filename"`
	PDFBase64 string `json:"pdfBase64"`
	PDFURL    string `json:"pdfUrl"`
}

type tailorResponse struct {
	OK     bool         `json:"ok"`
	Result tailorResult `json:"result"`
}

type artifactSummary struct {
	ID        string `json:"id"`
	Filename  string `json:"filename"`
	JobLink   string `json:"jobLink"`
	CreatedAt string `json:"createdAt"`
}
