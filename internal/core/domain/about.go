package domain

// ToolInfo identifies the jc process itself.
type ToolInfo struct {
	Name        string
	Version     string
	Description string
	Author      string
	AuthorEmail string
}

// ConverterInfo is one converter's descriptor as it appears in the about report.
type ConverterInfo struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	AuthorEmail string   `json:"author_email"`
	Compatible  []string `json:"compatible"`
	Details     string   `json:"details"`
}

// AboutReport describes the tool and every registered converter.
// Parsers follows registry order.
type AboutReport struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Author      string          `json:"author"`
	AuthorEmail string          `json:"author_email"`
	Parsers     []ConverterInfo `json:"parsers"`
}

// UsageEntry is one line of the parser list in the usage help.
type UsageEntry struct {
	Flag        string
	Description string
}
