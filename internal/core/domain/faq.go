package domain

// AttachmentType is the media kind attached to an FAQ answer.
type AttachmentType string

// Attachment types.
const (
	AttachmentImage   AttachmentType = "image"
	AttachmentVideo   AttachmentType = "video"
	AttachmentYouTube AttachmentType = "ytLink"
)

// FAQItem is one question as authored in the FAQ data file.
type FAQItem struct {
	Question string         `json:"question"`
	Answer   string         `json:"answer"`
	File     string         `json:"file,omitempty"`
	FileType AttachmentType `json:"fileType,omitempty"`
}

// FAQCategory groups questions under a heading.
type FAQCategory struct {
	Label  string    `json:"label"`
	Accent string    `json:"accent"`
	Icon   string    `json:"icon"`
	Items  []FAQItem `json:"items"`
}

// Attachment is a resolved media element shown below an answer.
type Attachment struct {
	Type AttachmentType `json:"type"`
	Src  string         `json:"src"`
}

// FAQEntry is a rendered question.
type FAQEntry struct {
	Anchor     string      `json:"anchor"`
	Question   string      `json:"question"`
	Answer     []Block     `json:"answer"`
	Attachment *Attachment `json:"attachment,omitempty"`
}

// FAQSection is a rendered category.
type FAQSection struct {
	Label   string     `json:"label"`
	Accent  string     `json:"accent"`
	Icon    string     `json:"icon"`
	Entries []FAQEntry `json:"entries"`
}

// FAQ is the rendered FAQ page.
type FAQ struct {
	Sections []FAQSection `json:"sections"`

	// Collisions lists anchors shared by more than one question.
	Collisions []string `json:"collisions,omitempty"`
}

// Entry returns the first entry with the given anchor.
func (f *FAQ) Entry(anchor string) (*FAQEntry, bool) {
	for i := range f.Sections {
		for j := range f.Sections[i].Entries {
			if f.Sections[i].Entries[j].Anchor == anchor {
				return &f.Sections[i].Entries[j], true
			}
		}
	}
	return nil, false
}
