package tracker

import (
	"testing"

	"github.com/jra3/unitrack/internal/domain"
)

func TestUpdateIssueIsEmpty(t *testing.T) {
	if !(UpdateIssue{}).IsEmpty() {
		t.Error("zero-value UpdateIssue should be empty")
	}

	summary := "new summary"
	if (UpdateIssue{Summary: &summary}).IsEmpty() {
		t.Error("UpdateIssue with Summary set should not be empty")
	}

	desc := "new description"
	if (UpdateIssue{Description: &desc}).IsEmpty() {
		t.Error("UpdateIssue with Description set should not be empty")
	}

	fields := []domain.CustomField{domain.SingleEnumField("Priority", "High")}
	if (UpdateIssue{Fields: fields}).IsEmpty() {
		t.Error("UpdateIssue with Fields set should not be empty")
	}
}

func TestUpdateArticleIsEmpty(t *testing.T) {
	if !(UpdateArticle{}).IsEmpty() {
		t.Error("zero-value UpdateArticle should be empty")
	}

	title := "new title"
	if (UpdateArticle{Title: &title}).IsEmpty() {
		t.Error("UpdateArticle with Title set should not be empty")
	}

	content := "new content"
	if (UpdateArticle{Content: &content}).IsEmpty() {
		t.Error("UpdateArticle with Content set should not be empty")
	}
}
