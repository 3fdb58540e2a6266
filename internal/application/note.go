package application

import (
	"context"
	"strings"

	"github.com/linskybing/forms-go/internal/domain/submission"
	"github.com/linskybing/forms-go/internal/repository"
)

type NoteService struct {
	Repos *repository.Repos
}

func NewNoteService(repos *repository.Repos) *NoteService {
	return &NoteService{
		Repos: repos,
	}
}

func (s *NoteService) List(ctx context.Context, submissionID uint) ([]submission.Note, error) {
	if _, err := s.Repos.Submission.FindByID(ctx, submissionID); err != nil {
		return nil, notFound(err, ErrSubmissionNotFound)
	}
	return s.Repos.Note.ListBySubmission(ctx, submissionID)
}

func (s *NoteService) Add(ctx context.Context, submissionID uint, input submission.NoteInput, authorID *uint) (*submission.Note, error) {
	if _, err := s.Repos.Submission.FindByID(ctx, submissionID); err != nil {
		return nil, notFound(err, ErrSubmissionNotFound)
	}
	n := &submission.Note{
		SubmissionID: submissionID,
		AuthorID:     authorID,
		Name:         strings.TrimSpace(input.Name),
		Text:         strings.TrimSpace(input.Text),
	}
	if n.Name == "" || n.Text == "" {
		return nil, invalid("note name and text are required")
	}
	if err := s.Repos.Note.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *NoteService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Repos.Note.FindByID(ctx, id); err != nil {
		return notFound(err, ErrNoteNotFound)
	}
	return s.Repos.Note.Delete(ctx, id)
}
