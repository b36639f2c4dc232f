package models

import "github.com/google/uuid"

type KnowledgeCategory string

const (
	CategoryEnrollment  KnowledgeCategory = "enrollment"
	CategoryGeneral     KnowledgeCategory = "general"
	CategoryTuition     KnowledgeCategory = "tuition"
	CategoryScholarship KnowledgeCategory = "scholarship"
	CategoryPolicy      KnowledgeCategory = "policy"
	CategoryAcademics   KnowledgeCategory = "academics"
)

type KnowledgeSource string

const (
	SourceManual KnowledgeSource = "manual"
	SourcePDF    KnowledgeSource = "pdf"
	SourceSystem KnowledgeSource = "system"
)

// KnowledgeItem is a curated question/answer pair used to ground generated
// answers. Question holds the topic/title, Answer the content.
type KnowledgeItem struct {
	ID        uuid.UUID         `db:"id"`
	Question  string            `db:"question"`
	Answer    string            `db:"answer"`
	Category  KnowledgeCategory `db:"category"`
	Source    KnowledgeSource   `db:"source"`
	DateAdded int64             `db:"date_added"` // epoch ms
}
