package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"brd-wizard-be/internal/constant"
	"brd-wizard-be/internal/dto"
	"brd-wizard-be/internal/entity"
	"brd-wizard-be/internal/repository/contract"
	"brd-wizard-be/internal/repository/specification"
	"brd-wizard-be/internal/repository/unitofwork"
	"brd-wizard-be/pkg/brd"
	"brd-wizard-be/pkg/normalizer"
	"brd-wizard-be/pkg/scoring"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes for the unit of work stack. FindOne returns copies so the
// write-through behaviour of the service is actually observable.

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.BrdSession
	updates  int
}

func cloneSession(s *entity.BrdSession) *entity.BrdSession {
	cp := *s
	cp.Fields = map[string]string{}
	for k, v := range s.Fields {
		cp.Fields[k] = v
	}
	cp.Answers = map[string]string{}
	for k, v := range s.Answers {
		cp.Answers[k] = v
	}
	return &cp
}

func (r *fakeSessionRepo) Create(_ context.Context, session *entity.BrdSession) error {
	r.sessions[session.Id] = cloneSession(session)
	return nil
}

func (r *fakeSessionRepo) Update(_ context.Context, session *entity.BrdSession) error {
	r.sessions[session.Id] = cloneSession(session)
	r.updates++
	return nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.sessions, id)
	return nil
}

func (r *fakeSessionRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.BrdSession, error) {
	var id, userId uuid.UUID
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			id = s.ID
		case specification.ByUserID:
			userId = s.UserID
		}
	}
	session, ok := r.sessions[id]
	if !ok || session.UserId != userId {
		return nil, nil
	}
	return cloneSession(session), nil
}

func (r *fakeSessionRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.BrdSession, error) {
	var all []*entity.BrdSession
	for _, s := range r.sessions {
		all = append(all, cloneSession(s))
	}
	return all, nil
}

func (r *fakeSessionRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.sessions)), nil
}

type fakeFieldUpdateRepo struct {
	updates []*entity.FieldUpdate
}

func (r *fakeFieldUpdateRepo) Create(_ context.Context, update *entity.FieldUpdate) error {
	cp := *update
	r.updates = append(r.updates, &cp)
	return nil
}

func (r *fakeFieldUpdateRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.FieldUpdate, error) {
	return r.updates, nil
}

func (r *fakeFieldUpdateRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.updates)), nil
}

type fakeDocRepo struct{}

func (fakeDocRepo) Create(_ context.Context, _ *entity.SessionDocument) error          { return nil }
func (fakeDocRepo) CreateBulk(_ context.Context, _ []*entity.SessionDocument) error    { return nil }
func (fakeDocRepo) DeleteBySessionId(_ context.Context, _ uuid.UUID) error             { return nil }
func (fakeDocRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.SessionDocument, error) {
	return nil, nil
}
func (fakeDocRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return 0, nil
}
func (fakeDocRepo) SearchSimilar(_ context.Context, _ []float32, _ int, _ uuid.UUID) ([]*entity.SessionDocument, error) {
	return nil, nil
}

type fakeUow struct {
	sessions *fakeSessionRepo
	trail    *fakeFieldUpdateRepo
}

func (u *fakeUow) Begin(_ context.Context) error { return nil }
func (u *fakeUow) Commit() error                 { return nil }
func (u *fakeUow) Rollback() error               { return nil }

func (u *fakeUow) BrdSessionRepository() contract.BrdSessionRepository { return u.sessions }
func (u *fakeUow) FieldUpdateRepository() contract.FieldUpdateRepository {
	return u.trail
}
func (u *fakeUow) SessionDocumentRepository() contract.SessionDocumentRepository {
	return fakeDocRepo{}
}

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork { return f.uow }

type nopLogger struct{}

func (nopLogger) Debug(_, _ string, _ map[string]interface{}) {}
func (nopLogger) Info(_, _ string, _ map[string]interface{})  {}
func (nopLogger) Warn(_, _ string, _ map[string]interface{})  {}
func (nopLogger) Error(_, _ string, _ map[string]interface{}) {}
func (nopLogger) Sync() error                                 { return nil }

type nopLocks struct{}

func (nopLocks) Acquire(_ context.Context, _ string) (func(), error) {
	return func() {}, nil
}

type fnNormalizer struct {
	fn func(ctx context.Context, in normalizer.Input) (*normalizer.Result, error)
}

func (f fnNormalizer) Normalize(ctx context.Context, in normalizer.Input) (*normalizer.Result, error) {
	return f.fn(ctx, in)
}

type fnSummarizer struct {
	fn func(ctx context.Context, text string, maxChars int) (string, error)
}

func (f fnSummarizer) Summarize(ctx context.Context, text string, maxChars int) (string, error) {
	return f.fn(ctx, text, maxChars)
}

type wizardFixture struct {
	service  IWizardService
	sessions *fakeSessionRepo
	trail    *fakeFieldUpdateRepo
	userId   uuid.UUID
}

func newWizardFixture(norm normalizer.Normalizer, summ fnSummarizer) *wizardFixture {
	sessions := &fakeSessionRepo{sessions: map[uuid.UUID]*entity.BrdSession{}}
	trail := &fakeFieldUpdateRepo{}
	factory := &fakeFactory{uow: &fakeUow{sessions: sessions, trail: trail}}

	svc := NewWizardService(
		factory,
		nopLogger{},
		nopLocks{},
		norm,
		summ,
		nil, // no retriever, snippet lookup is optional
		nil, // no event bus
		nil, // no ingest pipeline
		"uploads",
		1200,
	)

	return &wizardFixture{
		service:  svc,
		sessions: sessions,
		trail:    trail,
		userId:   uuid.New(),
	}
}

func passthroughSummarizer() fnSummarizer {
	return fnSummarizer{fn: func(_ context.Context, text string, _ int) (string, error) {
		return text, nil
	}}
}

func (fx *wizardFixture) seedSession(state entity.WizardState) uuid.UUID {
	session := &entity.BrdSession{
		Id:        uuid.New(),
		UserId:    fx.userId,
		Title:     "Test BRD",
		State:     state,
		Fields:    brd.DefaultFields(),
		Answers:   map[string]string{},
		CreatedAt: time.Now(),
	}
	fx.sessions.sessions[session.Id] = session
	return session.Id
}

func (fx *wizardFixture) stored(id uuid.UUID) *entity.BrdSession {
	return fx.sessions.sessions[id]
}

func goodAnswers() map[string]string {
	return map[string]string{
		brd.FieldBackground:    "Mevcut mobil şube başvuru akışı eski teknoloji üzerinde çalışıyor ve müşteri kaybına yol açıyor.",
		brd.FieldExpected:      "Dönüşüm oranını %25'e çıkarmak, işlem süresini 3 dk altına indirmek.",
		brd.FieldCustomerGroup: "Bireysel bankacılık, 25-40 yaş mobil kullanıcılar",
		brd.FieldChannels:      "Mobil uygulama, internet şubesi ve çağrı merkezi",
		brd.FieldJourney:       "Mevcut sürecin iyileştirilmesi",
		brd.FieldJourneyDesc:   "Müşteri giriş yaptıktan sonra ürün listesine ulaşır, başvuru formunu doldurur ve onay adımında kimlik doğrulaması yapılır. Bir hata oluşursa müşteri kaldığı adımdan devam eder, timeout sonrasında oturum yenilenir.",
		brd.FieldReports:       "Aylık dönüşüm ve terk raporu",
		brd.FieldTraffic:       "Günde 40000 işlem",
		brd.FieldPrivacy:       "Hayır, kişisel veri işlenmeyecek.",
	}
}

func TestCreateSessionStartsAtIntake(t *testing.T) {
	fx := newWizardFixture(normalizer.NewStubNormalizer(), passthroughSummarizer())

	payload, err := fx.service.CreateSession(context.Background(), fx.userId, &dto.CreateSessionRequest{Title: "Yeni BRD"})
	require.NoError(t, err)

	assert.Equal(t, string(entity.StateIntake), payload.State)
	assert.Equal(t, constant.IntakeField, payload.NextField)
	assert.Equal(t, constant.QuestionsTR[constant.QIntakeHasSlides], payload.Prompt)
	assert.False(t, payload.SubmitAllowed)
	assert.Equal(t, 0, payload.TotalScore)
	assert.Equal(t, brd.MaxTotal(), payload.MaxTotal)

	stored := fx.stored(payload.SessionId)
	require.NotNil(t, stored)
	assert.Equal(t, entity.StateIntake, stored.State)
}

func TestSubmitTurnUnknownSession(t *testing.T) {
	fx := newWizardFixture(normalizer.NewStubNormalizer(), passthroughSummarizer())

	_, err := fx.service.SubmitTurn(context.Background(), fx.userId, uuid.New(), &dto.TurnRequest{Message: "Evet"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSubmitTurnWrongUser(t *testing.T) {
	fx := newWizardFixture(normalizer.NewStubNormalizer(), passthroughSummarizer())
	sessionId := fx.seedSession(entity.StateIntake)

	_, err := fx.service.SubmitTurn(context.Background(), uuid.New(), sessionId, &dto.TurnRequest{Message: "Evet"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestIntakeDeclineClosesGate(t *testing.T) {
	fx := newWizardFixture(normalizer.NewStubNormalizer(), passthroughSummarizer())
	sessionId := fx.seedSession(entity.StateIntake)

	payload, err := fx.service.SubmitTurn(context.Background(), fx.userId, sessionId, &dto.TurnRequest{Message: "Hayır"})
	require.NoError(t, err)

	assert.Equal(t, string(entity.StateFieldLoop), payload.State)
	assert.Equal(t, brd.FieldBackground, payload.NextField)

	stored := fx.stored(sessionId)
	assert.True(t, stored.PdfGateDone)
	assert.Equal(t, brd.FieldBackground, stored.ActiveField)
}

func TestIntakeAffirmativeMovesToUploadWait(t *testing.T) {
	fx := newWizardFixture(normalizer.NewStubNormalizer(), passthroughSummarizer())
	sessionId := fx.seedSession(entity.StateIntake)

	// Punctuation after the first token is tolerated.
	payload, err := fx.service.SubmitTurn(context.Background(), fx.userId, sessionId, &dto.TurnRequest{Message: "Evet, sunum hazır."})
	require.NoError(t, err)

	assert.Equal(t, string(entity.StateUploadWait), payload.State)
	assert.Equal(t, constant.UploadPDFField, payload.NextField)
	assert.False(t, fx.stored(sessionId).PdfGateDone)
}

func TestIntakeUnrecognizedReprompts(t *testing.T) {
	fx := newWizardFixture(normalizer.NewStubNormalizer(), passthroughSummarizer())
	sessionId := fx.seedSession(entity.StateIntake)

	payload, err := fx.service.SubmitTurn(context.Background(), fx.userId, sessionId, &dto.TurnRequest{Message: "belki sonra"})
	require.NoError(t, err)

	assert.Equal(t, string(entity.StateIntake), payload.State)
	require.Len(t, payload.NextQuestions, 1)
	assert.Equal(t, constant.QuestionsTR[constant.QIntakeYesNo], payload.NextQuestions[0])
	assert.False(t, fx.stored(sessionId).PdfGateDone)
}

func TestUploadWaitDeclineClosesGate(t *testing.T) {
	fx := newWizardFixture(normalizer.NewStubNormalizer(), passthroughSummarizer())
	sessionId := fx.seedSession(entity.StateUploadWait)

	payload, err := fx.service.SubmitTurn(context.Background(), fx.userId, sessionId, &dto.TurnRequest{Message: "yok"})
	require.NoError(t, err)

	assert.Equal(t, string(entity.StateFieldLoop), payload.State)
	stored := fx.stored(sessionId)
	assert.True(t, stored.PdfGateDone)
	assert.Empty(t, stored.Fields[brd.FieldBackground])
}

func TestFieldTurnWritesFieldAndAudits(t *testing.T) {
	fx := newWizardFixture(normalizer.NewStubNormalizer(), passthroughSummarizer())
	sessionId := fx.seedSession(entity.StateFieldLoop)
	fx.stored(sessionId).ActiveField = brd.FieldBackground

	answer := goodAnswers()[brd.FieldBackground]
	payload, err := fx.service.SubmitTurn(context.Background(), fx.userId, sessionId, &dto.TurnRequest{Message: answer})
	require.NoError(t, err)

	stored := fx.stored(sessionId)
	assert.Equal(t, answer, stored.Fields[brd.FieldBackground])
	assert.Equal(t, brd.FieldExpected, payload.NextField)

	require.Len(t, fx.trail.updates, 1)
	update := fx.trail.updates[0]
	assert.Equal(t, brd.FieldBackground, update.Field)
	assert.Equal(t, constant.SourceGuided, update.Source)
	assert.Empty(t, update.OldValue)
	assert.Equal(t, answer, update.NewValue)
}

func TestFieldTurnWeakAnswerReasksSameField(t *testing.T) {
	fx := newWizardFixture(normalizer.NewStubNormalizer(), passthroughSummarizer())
	sessionId := fx.seedSession(entity.StateFieldLoop)
	fx.stored(sessionId).ActiveField = brd.FieldBackground

	payload, err := fx.service.SubmitTurn(context.Background(), fx.userId, sessionId, &dto.TurnRequest{Message: "kısa metin"})
	require.NoError(t, err)

	// A shallow answer leaves the field weak, so the wizard stays on it with
	// the more-detail prompt.
	assert.Equal(t, brd.FieldBackground, payload.NextField)
	assert.Contains(t, payload.WeakFields, brd.FieldBackground)
	require.NotEmpty(t, payload.NextQuestions)
	assert.Equal(t, constant.QuestionsTR[scoring.QBackgroundMoreDetail], payload.NextQuestions[0])
	assert.Equal(t, "kısa metin", fx.stored(sessionId).Fields[brd.FieldBackground])
}

func TestClarifyingTurnDoesNotWriteField(t *testing.T) {
	followup := "Hangi süreç kastediliyor?"
	calls := 0
	norm := fnNormalizer{fn: func(_ context.Context, in normalizer.Input) (*normalizer.Result, error) {
		calls++
		if calls == 1 {
			return &normalizer.Result{
				Confidence:         0.4,
				NeedsClarification: true,
				FollowupQuestion:   followup,
			}, nil
		}
		return &normalizer.Result{Value: in.RawAnswer, Confidence: 0.9}, nil
	}}

	fx := newWizardFixture(norm, passthroughSummarizer())
	sessionId := fx.seedSession(entity.StateFieldLoop)
	fx.stored(sessionId).ActiveField = brd.FieldBackground

	payload, err := fx.service.SubmitTurn(context.Background(), fx.userId, sessionId, &dto.TurnRequest{Message: "süreç yavaş"})
	require.NoError(t, err)

	assert.Equal(t, string(entity.StateClarifying), payload.State)
	require.Len(t, payload.NextQuestions, 1)
	assert.Equal(t, followup, payload.NextQuestions[0])
	assert.Empty(t, fx.stored(sessionId).Fields[brd.FieldBackground])
	assert.Empty(t, fx.trail.updates)

	// The clarified answer lands on the same field.
	answer := goodAnswers()[brd.FieldBackground]
	payload, err = fx.service.SubmitTurn(context.Background(), fx.userId, sessionId, &dto.TurnRequest{Message: answer})
	require.NoError(t, err)

	assert.Equal(t, string(entity.StateFieldLoop), payload.State)
	assert.Equal(t, answer, fx.stored(sessionId).Fields[brd.FieldBackground])
	require.Len(t, fx.trail.updates, 1)
}

func TestNormalizerFailureFallsBackToRaw(t *testing.T) {
	norm := fnNormalizer{fn: func(_ context.Context, _ normalizer.Input) (*normalizer.Result, error) {
		return nil, errors.New("model unavailable")
	}}

	fx := newWizardFixture(norm, passthroughSummarizer())
	sessionId := fx.seedSession(entity.StateFieldLoop)
	fx.stored(sessionId).ActiveField = brd.FieldBackground

	_, err := fx.service.SubmitTurn(context.Background(), fx.userId, sessionId, &dto.TurnRequest{Message: "  yanıt metni  "})
	require.NoError(t, err)

	assert.Equal(t, "yanıt metni", fx.stored(sessionId).Fields[brd.FieldBackground])
	require.Len(t, fx.trail.updates, 1)
	assert.Equal(t, normalizer.FallbackConfidence, fx.trail.updates[0].Confidence)
}

func TestSubmitPdfMergesSummaryIntoBackground(t *testing.T) {
	fx := newWizardFixture(normalizer.NewStubNormalizer(), fnSummarizer{fn: func(_ context.Context, _ string, _ int) (string, error) {
		return "PDF özeti", nil
	}})
	sessionId := fx.seedSession(entity.StateUploadWait)
	fx.stored(sessionId).Fields[brd.FieldBackground] = "Mevcut açıklama"

	payload, err := fx.service.SubmitPdf(context.Background(), fx.userId, sessionId, &dto.PdfUploadRequest{
		FileName: "deck.pdf",
		PdfText:  "uzun pdf metni",
	})
	require.NoError(t, err)

	assert.Equal(t, string(entity.StateFieldLoop), payload.State)

	stored := fx.stored(sessionId)
	assert.Equal(t, "Mevcut açıklama\n\nPDF özeti", stored.Fields[brd.FieldBackground])
	assert.True(t, stored.PdfGateDone)
	assert.True(t, stored.PdfAppliedToBackground)
	assert.Equal(t, "PDF özeti", stored.PdfSummary)
	assert.Equal(t, filepath.Join("uploads", "deck.pdf"), stored.PdfUploadedPath)

	require.Len(t, fx.trail.updates, 1)
	assert.Equal(t, constant.SourcePDF, fx.trail.updates[0].Source)
	assert.Equal(t, 0.9, fx.trail.updates[0].Confidence)

	// The gate only closes once.
	_, err = fx.service.SubmitPdf(context.Background(), fx.userId, sessionId, &dto.PdfUploadRequest{
		FileName: "deck.pdf",
		PdfText:  "uzun pdf metni",
	})
	assert.ErrorIs(t, err, ErrGateClosed)
}

func TestSubmitPdfSummarizerFailureStillClosesGate(t *testing.T) {
	fx := newWizardFixture(normalizer.NewStubNormalizer(), fnSummarizer{fn: func(_ context.Context, _ string, _ int) (string, error) {
		return "", errors.New("summarizer down")
	}})
	sessionId := fx.seedSession(entity.StateUploadWait)

	payload, err := fx.service.SubmitPdf(context.Background(), fx.userId, sessionId, &dto.PdfUploadRequest{
		FileName: "deck.pdf",
		PdfText:  "uzun pdf metni",
	})
	require.NoError(t, err)

	assert.Equal(t, string(entity.StateFieldLoop), payload.State)

	stored := fx.stored(sessionId)
	assert.True(t, stored.PdfGateDone)
	assert.False(t, stored.PdfAppliedToBackground)
	assert.Empty(t, stored.Fields[brd.FieldBackground])
	assert.Empty(t, fx.trail.updates)
}

func TestResumeAdvancesStaleIntakeState(t *testing.T) {
	fx := newWizardFixture(normalizer.NewStubNormalizer(), passthroughSummarizer())
	sessionId := fx.seedSession(entity.StateIntake)
	fx.stored(sessionId).PdfGateDone = true

	detail, err := fx.service.Resume(context.Background(), fx.userId, sessionId)
	require.NoError(t, err)

	assert.Equal(t, string(entity.StateFieldLoop), detail.Payload.State)
	assert.Equal(t, brd.FieldBackground, detail.Payload.NextField)
}

func TestFullConversationReachesComplete(t *testing.T) {
	fx := newWizardFixture(normalizer.NewStubNormalizer(), passthroughSummarizer())

	payload, err := fx.service.CreateSession(context.Background(), fx.userId, &dto.CreateSessionRequest{Title: "Mobil Şube"})
	require.NoError(t, err)
	sessionId := payload.SessionId

	payload, err = fx.service.SubmitTurn(context.Background(), fx.userId, sessionId, &dto.TurnRequest{Message: "Hayır"})
	require.NoError(t, err)

	answers := goodAnswers()
	for i := 0; i < 15 && payload.State == string(entity.StateFieldLoop); i++ {
		answer, ok := answers[payload.NextField]
		require.True(t, ok, "no scripted answer for field %s", payload.NextField)

		payload, err = fx.service.SubmitTurn(context.Background(), fx.userId, sessionId, &dto.TurnRequest{Message: answer})
		require.NoError(t, err)
	}

	assert.Equal(t, string(entity.StateComplete), payload.State)
	assert.True(t, payload.SubmitAllowed)
	assert.Empty(t, payload.SubmitBlockers)
	assert.Equal(t, 100, payload.TotalScore)
	assert.Empty(t, payload.NextField)
	assert.Equal(t, entity.StateComplete, fx.stored(sessionId).State)
}
