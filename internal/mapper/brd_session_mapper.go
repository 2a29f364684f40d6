package mapper

import (
	"encoding/json"
	"time"

	"brd-wizard-be/internal/entity"
	"brd-wizard-be/internal/model"
	"brd-wizard-be/pkg/brd"
	"brd-wizard-be/pkg/scoring"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BrdSessionMapper struct{}

func NewBrdSessionMapper() *BrdSessionMapper {
	return &BrdSessionMapper{}
}

func (m *BrdSessionMapper) ToEntity(s *model.BrdSession) *entity.BrdSession {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	fields := map[string]string{}
	if len(s.Fields) > 0 {
		_ = json.Unmarshal(s.Fields, &fields)
	}
	// Backfill so rows written before a field was added still expose the full
	// canonical field set.
	for _, f := range brd.Fields {
		if _, ok := fields[f]; !ok {
			fields[f] = ""
		}
	}

	answers := map[string]string{}
	if len(s.Answers) > 0 {
		_ = json.Unmarshal(s.Answers, &answers)
	}

	var lastScore *scoring.ScoreResult
	if len(s.LastScore) > 0 {
		var sr scoring.ScoreResult
		if err := json.Unmarshal(s.LastScore, &sr); err == nil {
			lastScore = &sr
		}
	}

	return &entity.BrdSession{
		Id:                     s.Id,
		UserId:                 s.UserId,
		Title:                  s.Title,
		State:                  entity.WizardState(s.State),
		Fields:                 fields,
		Answers:                answers,
		ActiveField:            s.ActiveField,
		LastQuestionIds:        []string(s.LastQuestionIds),
		LastScore:              lastScore,
		PdfGateDone:            s.PdfGateDone,
		PdfUploadedPath:        s.PdfUploadedPath,
		PdfSummary:             s.PdfSummary,
		PdfAppliedToBackground: s.PdfAppliedToBackground,
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              updatedAt,
		DeletedAt:              deletedAt,
		IsDeleted:              s.DeletedAt.Valid,
	}
}

func (m *BrdSessionMapper) ToModel(s *entity.BrdSession) *model.BrdSession {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	} else if s.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	fields := s.Fields
	if fields == nil {
		fields = brd.DefaultFields()
	}
	fieldsJSON, _ := json.Marshal(fields)

	answers := s.Answers
	if answers == nil {
		answers = map[string]string{}
	}
	answersJSON, _ := json.Marshal(answers)

	var scoreJSON datatypes.JSON
	if s.LastScore != nil {
		b, _ := json.Marshal(s.LastScore)
		scoreJSON = b
	}

	return &model.BrdSession{
		Id:                     s.Id,
		UserId:                 s.UserId,
		Title:                  s.Title,
		State:                  string(s.State),
		Fields:                 fieldsJSON,
		Answers:                answersJSON,
		ActiveField:            s.ActiveField,
		LastQuestionIds:        datatypes.NewJSONSlice(s.LastQuestionIds),
		LastScore:              scoreJSON,
		PdfGateDone:            s.PdfGateDone,
		PdfUploadedPath:        s.PdfUploadedPath,
		PdfSummary:             s.PdfSummary,
		PdfAppliedToBackground: s.PdfAppliedToBackground,
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              updatedAt,
		DeletedAt:              deletedAt,
	}
}

func (m *BrdSessionMapper) FieldUpdateToEntity(u *model.FieldUpdate) *entity.FieldUpdate {
	if u == nil {
		return nil
	}
	return &entity.FieldUpdate{
		Id:         u.Id,
		SessionId:  u.SessionId,
		Field:      u.Field,
		OldValue:   u.OldValue,
		NewValue:   u.NewValue,
		Source:     u.Source,
		Confidence: u.Confidence,
		CreatedAt:  u.CreatedAt,
	}
}

func (m *BrdSessionMapper) FieldUpdateToModel(u *entity.FieldUpdate) *model.FieldUpdate {
	if u == nil {
		return nil
	}
	return &model.FieldUpdate{
		Id:         u.Id,
		SessionId:  u.SessionId,
		Field:      u.Field,
		OldValue:   u.OldValue,
		NewValue:   u.NewValue,
		Source:     u.Source,
		Confidence: u.Confidence,
		CreatedAt:  u.CreatedAt,
	}
}

func (m *BrdSessionMapper) FieldUpdatesToEntities(updates []*model.FieldUpdate) []*entity.FieldUpdate {
	entities := make([]*entity.FieldUpdate, len(updates))
	for i, u := range updates {
		entities[i] = m.FieldUpdateToEntity(u)
	}
	return entities
}
