package service

import (
	"context"
	"fmt"

	"brd-wizard-be/internal/dto"
	"brd-wizard-be/internal/entity"
	"brd-wizard-be/internal/repository/specification"
	"brd-wizard-be/internal/repository/unitofwork"
	"brd-wizard-be/pkg/export"
	"brd-wizard-be/pkg/scoring"

	"github.com/google/uuid"
)

type ExportResult struct {
	Content     []byte
	ContentType string
	FileName    string
}

type IExportService interface {
	Preview(ctx context.Context, userId, sessionId uuid.UUID) (*dto.PreviewResponse, error)
	Export(ctx context.Context, userId, sessionId uuid.UUID, format string) (*ExportResult, error)
}

type exportService struct {
	uowFactory unitofwork.RepositoryFactory
	writer     export.SectionWriter
}

// NewExportService builds the document generator. writer may be nil, in which
// case sections keep their deterministic template bodies.
func NewExportService(uowFactory unitofwork.RepositoryFactory, writer export.SectionWriter) IExportService {
	return &exportService{uowFactory: uowFactory, writer: writer}
}

func (s *exportService) Preview(ctx context.Context, userId, sessionId uuid.UUID) (*dto.PreviewResponse, error) {
	session, result, err := s.load(ctx, userId, sessionId)
	if err != nil {
		return nil, err
	}

	return &dto.PreviewResponse{
		SessionId: sessionId,
		Markdown:  export.Preview(session.Title, s.sections(ctx, session), result),
	}, nil
}

func (s *exportService) Export(ctx context.Context, userId, sessionId uuid.UUID, format string) (*ExportResult, error) {
	session, result, err := s.load(ctx, userId, sessionId)
	if err != nil {
		return nil, err
	}

	content, contentType, ext := export.ForFormat(format).Export(session.Title, s.sections(ctx, session), result)

	return &ExportResult{
		Content:     content,
		ContentType: contentType,
		FileName:    fmt.Sprintf("brd-%s.%s", sessionId, ext),
	}, nil
}

func (s *exportService) load(ctx context.Context, userId, sessionId uuid.UUID) (*entity.BrdSession, *scoring.ScoreResult, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.BrdSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, ErrSessionNotFound
	}

	return session, scoring.Compute(session.Fields), nil
}

// sections composes the document and, when a writer is configured, polishes
// each body. A writer failure keeps the template body.
func (s *exportService) sections(ctx context.Context, session *entity.BrdSession) []export.Section {
	sections := export.BuildSections(session.Fields)
	if s.writer == nil {
		return sections
	}

	for i := range sections {
		body, err := s.writer.Rewrite(ctx, sections[i])
		if err == nil && body != "" {
			sections[i].Body = body
		}
	}
	return sections
}
