package service

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"brd-wizard-be/internal/constant"
	"brd-wizard-be/internal/dto"
	"brd-wizard-be/internal/entity"
	"brd-wizard-be/internal/pkg/logger"
	"brd-wizard-be/internal/repository/specification"
	"brd-wizard-be/internal/repository/unitofwork"
	"brd-wizard-be/pkg/brd"
	"brd-wizard-be/pkg/events"
	"brd-wizard-be/pkg/lock"
	pktNats "brd-wizard-be/pkg/nats"
	"brd-wizard-be/pkg/normalizer"
	"brd-wizard-be/pkg/retrieval"
	"brd-wizard-be/pkg/scoring"
	"brd-wizard-be/pkg/selection"
	"brd-wizard-be/pkg/summarizer"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found or access denied")
	ErrGateClosed      = errors.New("intake gate already closed")
)

// maxNextQuestions caps how many follow-up prompts one payload carries.
const maxNextQuestions = 2

type IWizardService interface {
	CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.WizardPayload, error)
	Resume(ctx context.Context, userId, sessionId uuid.UUID) (*dto.SessionDetailResponse, error)
	SubmitTurn(ctx context.Context, userId, sessionId uuid.UUID, req *dto.TurnRequest) (*dto.WizardPayload, error)
	SubmitPdf(ctx context.Context, userId, sessionId uuid.UUID, req *dto.PdfUploadRequest) (*dto.WizardPayload, error)
}

type wizardService struct {
	uowFactory       unitofwork.RepositoryFactory
	logger           logger.ILogger
	locks            lock.Registry
	normalizer       normalizer.Normalizer
	summarizer       summarizer.Summarizer
	retriever        *retrieval.Retriever
	eventPublisher   *pktNats.Publisher
	publisherService IPublisherService
	uploadDir        string
	summaryCap       int
}

func NewWizardService(
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
	locks lock.Registry,
	norm normalizer.Normalizer,
	summ summarizer.Summarizer,
	retriever *retrieval.Retriever,
	eventPublisher *pktNats.Publisher,
	publisherService IPublisherService,
	uploadDir string,
	summaryCap int,
) IWizardService {
	return &wizardService{
		uowFactory:       uowFactory,
		logger:           log,
		locks:            locks,
		normalizer:       norm,
		summarizer:       summ,
		retriever:        retriever,
		eventPublisher:   eventPublisher,
		publisherService: publisherService,
		uploadDir:        uploadDir,
		summaryCap:       summaryCap,
	}
}

// Yes/No recognition for the intake gate. Only the first whitespace token
// matters; Turkish dotted/dotless i casing is handled explicitly.

var (
	affirmativeTokens = map[string]bool{"evet": true, "e": true, "var": true, "yes": true, "y": true}
	negativeTokens    = map[string]bool{"hayır": true, "hayir": true, "yok": true, "no": true, "n": true, "h": true}
)

type yesNoAnswer int

const (
	answerUnrecognized yesNoAnswer = iota
	answerYes
	answerNo
)

func classifyYesNo(input string) yesNoAnswer {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return answerUnrecognized
	}
	token := strings.ToLowerSpecial(unicode.TurkishCase, fields[0])
	token = strings.TrimFunc(token, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
	if affirmativeTokens[token] {
		return answerYes
	}
	if negativeTokens[token] {
		return answerNo
	}
	return answerUnrecognized
}

// CreateSession

func (s *wizardService) CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.WizardPayload, error) {
	session := entity.BrdSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     req.Title,
		State:     entity.StateIntake,
		Fields:    brd.DefaultFields(),
		Answers:   map[string]string{},
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	result := s.recompute(&session)
	if err := uow.BrdSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.NewSessionCreatedEvent(session.Id.String(), userId.String()))
	s.logger.Info("wizard_service", "session created", map[string]interface{}{
		"session_id": session.Id,
	})

	return s.buildPayload(&session, result, nil), nil
}

// Resume

func (s *wizardService) Resume(ctx context.Context, userId, sessionId uuid.UUID) (*dto.SessionDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	// A resumed session with a closed gate never sits in the intake states.
	if session.PdfGateDone && (session.State == entity.StateIntake || session.State == entity.StateUploadWait) {
		result := s.recompute(session)
		s.advanceCursor(session, result)
	}

	result := s.recompute(session)

	trail, err := uow.FieldUpdateRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	trailDTO := make([]dto.FieldUpdateResponse, len(trail))
	for i, u := range trail {
		trailDTO[i] = dto.FieldUpdateResponse{
			Field:      u.Field,
			OldValue:   u.OldValue,
			NewValue:   u.NewValue,
			Source:     u.Source,
			Confidence: u.Confidence,
			CreatedAt:  u.CreatedAt,
		}
	}

	return &dto.SessionDetailResponse{
		Payload: *s.buildPayload(session, result, nil),
		Title:   session.Title,
		Fields:  session.Fields,
		Trail:   trailDTO,
	}, nil
}

// SubmitTurn

func (s *wizardService) SubmitTurn(ctx context.Context, userId, sessionId uuid.UUID, req *dto.TurnRequest) (*dto.WizardPayload, error) {
	release, err := s.locks.Acquire(ctx, sessionId.String())
	if err != nil {
		return nil, err
	}
	defer release()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	switch session.State {
	case entity.StateIntake:
		return s.handleIntakeTurn(ctx, uow, session, req.Message)
	case entity.StateUploadWait:
		return s.handleUploadWaitTurn(ctx, uow, session, req.Message)
	default:
		return s.handleFieldTurn(ctx, uow, session, req)
	}
}

func (s *wizardService) handleIntakeTurn(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.BrdSession, message string) (*dto.WizardPayload, error) {
	session.Answers[constant.QIntakeHasSlides] = message

	switch classifyYesNo(message) {
	case answerYes:
		session.State = entity.StateUploadWait
		result := s.recompute(session)
		if err := uow.BrdSessionRepository().Update(ctx, session); err != nil {
			return nil, err
		}
		return s.buildPayload(session, result, nil), nil

	case answerNo:
		return s.closeGate(ctx, uow, session)

	default:
		result := s.recompute(session)
		if err := uow.BrdSessionRepository().Update(ctx, session); err != nil {
			return nil, err
		}
		return s.buildPayload(session, result, []string{constant.QuestionsTR[constant.QIntakeYesNo]}), nil
	}
}

func (s *wizardService) handleUploadWaitTurn(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.BrdSession, message string) (*dto.WizardPayload, error) {
	session.Answers[constant.QUploadPDF] = message

	if classifyYesNo(message) == answerNo {
		return s.closeGate(ctx, uow, session)
	}

	// Anything but a decline keeps the gate waiting for the upload endpoint.
	result := s.recompute(session)
	if err := uow.BrdSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}
	return s.buildPayload(session, result, nil), nil
}

func (s *wizardService) handleFieldTurn(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.BrdSession, req *dto.TurnRequest) (*dto.WizardPayload, error) {
	field := session.ActiveField
	if field == "" {
		result := s.recompute(session)
		s.advanceCursor(session, result)
		field = session.ActiveField
		if field == "" {
			if err := uow.BrdSessionRepository().Update(ctx, session); err != nil {
				return nil, err
			}
			return s.buildPayload(session, result, nil), nil
		}
	}

	answerKey := req.QuestionId
	if answerKey == "" {
		answerKey = field
	}
	session.Answers[answerKey] = req.Message

	res := s.normalize(ctx, session, field, req.Message)

	if res.NeedsClarification && strings.TrimSpace(res.FollowupQuestion) != "" {
		session.State = entity.StateClarifying
		result := s.recompute(session)
		if err := uow.BrdSessionRepository().Update(ctx, session); err != nil {
			return nil, err
		}
		return s.buildPayload(session, result, []string{res.FollowupQuestion}), nil
	}

	prevAllowed := session.LastScore != nil && session.LastScore.SubmitAllowed

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := s.applyFieldUpdate(ctx, uow, session, field, res.Value, constant.SourceGuided, res.Confidence); err != nil {
		return nil, err
	}

	result := s.recompute(session)
	s.advanceCursor(session, result)

	if err := uow.BrdSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.NewFieldUpdatedEvent(session.Id.String(), field, constant.SourceGuided, result.TotalScore))
	if result.SubmitAllowed && !prevAllowed {
		s.publishEvent(ctx, events.NewSubmissionReadyEvent(session.Id.String(), result.TotalScore))
	}

	return s.buildPayload(session, result, nil), nil
}

// SubmitPdf

func (s *wizardService) SubmitPdf(ctx context.Context, userId, sessionId uuid.UUID, req *dto.PdfUploadRequest) (*dto.WizardPayload, error) {
	release, err := s.locks.Acquire(ctx, sessionId.String())
	if err != nil {
		return nil, err
	}
	defer release()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}
	if session.PdfGateDone {
		return nil, ErrGateClosed
	}

	summary, err := s.summarizer.Summarize(ctx, req.PdfText, s.summaryCap)
	if err != nil {
		// Summarization failure leaves Background unchanged but still closes
		// the gate.
		s.logger.Warn("wizard_service", "pdf summarization failed", map[string]interface{}{
			"session_id": session.Id,
			"error":      err.Error(),
		})
		summary = ""
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if summary != "" {
		merged := brd.AppendMerge(session.Fields[brd.FieldBackground], summary)
		if err := s.applyFieldUpdate(ctx, uow, session, brd.FieldBackground, merged, constant.SourcePDF, 0.9); err != nil {
			return nil, err
		}
		session.PdfSummary = summary
		session.PdfAppliedToBackground = true
	}

	session.PdfUploadedPath = filepath.Join(s.uploadDir, req.FileName)
	session.PdfGateDone = true
	session.ActiveField = ""
	session.LastQuestionIds = nil

	result := s.recompute(session)
	s.advanceCursor(session, result)

	if err := uow.BrdSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.enqueueIngest(ctx, session.Id, req.PdfText)
	if session.PdfAppliedToBackground {
		s.publishEvent(ctx, events.NewFieldUpdatedEvent(session.Id.String(), brd.FieldBackground, constant.SourcePDF, result.TotalScore))
	}

	return s.buildPayload(session, result, nil), nil
}

// Internals

func (s *wizardService) loadSession(ctx context.Context, uow unitofwork.UnitOfWork, userId, sessionId uuid.UUID) (*entity.BrdSession, error) {
	session, err := uow.BrdSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *wizardService) normalize(ctx context.Context, session *entity.BrdSession, field, raw string) *normalizer.Result {
	var snippets []string
	if s.retriever != nil {
		snippets = s.retriever.Snippets(ctx, session.Id, constant.FieldQueries[field], 3)
	}

	in := normalizer.Input{
		Field:       field,
		Description: constant.FieldDescriptionsTR[field],
		RawAnswer:   raw,
		Context:     relatedContext(session.Fields, field),
		Snippets:    snippets,
	}

	res, err := s.normalizer.Normalize(ctx, in)
	if err != nil || res == nil {
		// Normalizer errors never fail a turn.
		s.logger.Warn("wizard_service", "normalizer fallback", map[string]interface{}{
			"session_id": session.Id,
			"field":      field,
		})
		return normalizer.Passthrough(strings.TrimSpace(raw))
	}
	return res
}

// relatedContext limits the session context sent to the normalizer to the
// fields related to the one being answered.
func relatedContext(fields map[string]string, field string) map[string]string {
	related, ok := constant.RelatedFields[field]
	if !ok {
		return fields
	}
	out := make(map[string]string, len(related))
	for _, f := range related {
		if v := fields[f]; !brd.IsEmpty(v) {
			out[f] = v
		}
	}
	return out
}

func (s *wizardService) applyFieldUpdate(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.BrdSession, field, value, source string, confidence float64) error {
	old := session.Fields[field]
	session.Fields[field] = value

	update := entity.FieldUpdate{
		Id:         uuid.New(),
		SessionId:  session.Id,
		Field:      field,
		OldValue:   old,
		NewValue:   value,
		Source:     source,
		Confidence: confidence,
		CreatedAt:  time.Now(),
	}
	return uow.FieldUpdateRepository().Create(ctx, &update)
}

func (s *wizardService) recompute(session *entity.BrdSession) *scoring.ScoreResult {
	result := scoring.Compute(session.Fields)
	session.LastScore = result
	return result
}

// advanceCursor picks the next field and moves the state machine to
// FIELD_LOOP or COMPLETE accordingly.
func (s *wizardService) advanceCursor(session *entity.BrdSession, result *scoring.ScoreResult) {
	weak := scoring.WeakFields(result, brd.WeakRatio)
	next := selection.PickNextField(result, session.Fields, weak)

	if next == "" {
		session.State = entity.StateComplete
		session.ActiveField = ""
		session.LastQuestionIds = nil
		return
	}

	qids := selection.QuestionIDsForField(result, next)
	if len(qids) > maxNextQuestions {
		qids = qids[:maxNextQuestions]
	}
	session.State = entity.StateFieldLoop
	session.ActiveField = next
	session.LastQuestionIds = qids
}

func (s *wizardService) closeGate(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.BrdSession) (*dto.WizardPayload, error) {
	session.PdfGateDone = true
	session.ActiveField = ""
	session.LastQuestionIds = nil

	result := s.recompute(session)
	s.advanceCursor(session, result)

	if err := uow.BrdSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}
	return s.buildPayload(session, result, nil), nil
}

// buildPayload renders the uniform response. questionOverride carries
// literal question texts (re-prompts, clarifications) instead of the ids
// derived from the cursor.
func (s *wizardService) buildPayload(session *entity.BrdSession, result *scoring.ScoreResult, questionOverride []string) *dto.WizardPayload {
	payload := &dto.WizardPayload{
		SessionId:      session.Id,
		State:          string(session.State),
		TotalScore:     result.TotalScore,
		MaxTotal:       result.MaxTotal,
		SubmitAllowed:  result.SubmitAllowed,
		SubmitBlockers: result.SubmitBlockers,
		WeakFields:     scoring.WeakFields(result, brd.WeakRatio),
		FieldScores:    result.FieldScores,
	}
	if payload.SubmitBlockers == nil {
		payload.SubmitBlockers = []string{}
	}
	if payload.WeakFields == nil {
		payload.WeakFields = []string{}
	}

	var questionIds []string
	switch session.State {
	case entity.StateIntake:
		payload.NextField = constant.IntakeField
		questionIds = []string{constant.QIntakeHasSlides}
	case entity.StateUploadWait:
		payload.NextField = constant.UploadPDFField
		questionIds = []string{constant.QUploadPDF}
	case entity.StateComplete:
		payload.NextField = ""
	default:
		payload.NextField = session.ActiveField
		questionIds = session.LastQuestionIds
	}

	if questionOverride != nil {
		payload.NextQuestions = questionOverride
	} else {
		payload.NextQuestions = constant.ResolveQuestions(questionIds)
	}
	if len(payload.NextQuestions) > maxNextQuestions {
		payload.NextQuestions = payload.NextQuestions[:maxNextQuestions]
	}
	if payload.NextQuestions == nil {
		payload.NextQuestions = []string{}
	}
	if len(payload.NextQuestions) > 0 {
		payload.Prompt = payload.NextQuestions[0]
	}

	return payload
}

func (s *wizardService) publishEvent(ctx context.Context, evt events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("wizard_service", "event publish failed", map[string]interface{}{
			"event": evt.EventType(),
			"error": err.Error(),
		})
	}
}

// enqueueIngest hands the raw PDF text to the async embedding pipeline.
// Best-effort: indexing is context enrichment, not part of the turn contract.
func (s *wizardService) enqueueIngest(ctx context.Context, sessionId uuid.UUID, text string) {
	if s.publisherService == nil || strings.TrimSpace(text) == "" {
		return
	}

	msg := dto.PublishSessionDocumentMessage{
		SessionId: sessionId,
		Text:      text,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("wizard_service", "ingest publish failed", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
	}
}
