package domain

// DefaultBackLabel is used when a page has a back link without a label.
const DefaultBackLabel = "Back"

// Stat is a metadata chip shown under a page title.
type Stat struct {
	Icon  string `json:"icon"`
	Value string `json:"value"`
}

// Tab is one switchable body of an informative page.
type Tab struct {
	Label  string  `json:"label"`
	Icon   string  `json:"icon,omitempty"`
	Blocks []Block `json:"blocks"`
	Stats  []Stat  `json:"stats,omitempty"`
}

// Page is a titled document: a legal page, a changelog or a single rendered text.
type Page struct {
	Title     string  `json:"title"`
	UpdatedAt string  `json:"updated_at,omitempty"`
	BackHref  string  `json:"back_href,omitempty"`
	BackLabel string  `json:"back_label,omitempty"`
	Stats     []Stat  `json:"stats,omitempty"`
	Blocks    []Block `json:"blocks,omitempty"`
	Tabs      []Tab   `json:"tabs,omitempty"`
}

// BackText returns the back link label, falling back to DefaultBackLabel.
func (p *Page) BackText() string {
	if p.BackLabel == "" {
		return DefaultBackLabel
	}
	return p.BackLabel
}

// ActiveBlocks returns the blocks for the tab at index i.
// The page-level blocks are used when there are no tabs or i is out of range.
func (p *Page) ActiveBlocks(i int) []Block {
	if i >= 0 && i < len(p.Tabs) {
		return p.Tabs[i].Blocks
	}
	return p.Blocks
}

// ActiveStats returns the stats for the tab at index i, falling back to the
// page-level stats when the tab has none.
func (p *Page) ActiveStats(i int) []Stat {
	if i >= 0 && i < len(p.Tabs) && p.Tabs[i].Stats != nil {
		return p.Tabs[i].Stats
	}
	return p.Stats
}
