package services

import (
	"errors"
	"testing"

	"github.com/portfolio-backend/dto"
	"github.com/portfolio-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSkillParsesItems(t *testing.T) {
	setupTest(t)
	svc := NewSkillService()

	skill, err := svc.CreateSkill(dto.SkillRequest{
		Title:       "Frontend",
		Description: "UI work",
		Icon:        "monitor",
		Items:       "React, Next.js, TypeScript",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"React", "Next.js", "TypeScript"}, []string(skill.Items))
}

func TestCreateSkillRequiresItems(t *testing.T) {
	setupTest(t)
	svc := NewSkillService()

	_, err := svc.CreateSkill(dto.SkillRequest{
		Title:       "Frontend",
		Description: "UI work",
		Icon:        "monitor",
		Items:       " , , ",
	})

	var ve *errs.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "items")
}

func TestUpdateSkillReplacesItems(t *testing.T) {
	setupTest(t)
	svc := NewSkillService()

	created, err := svc.CreateSkill(dto.SkillRequest{
		Title:       "Backend",
		Description: "API work",
		Icon:        "server",
		Items:       "Go, Postgres",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateSkill(created.ID, dto.SkillRequest{
		Title:       "Backend",
		Description: "API work",
		Icon:        "server",
		Items:       "Go, Postgres, Redis",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "Postgres", "Redis"}, []string(updated.Items))
}

func TestSkillNotFound(t *testing.T) {
	setupTest(t)
	svc := NewSkillService()

	_, err := svc.GetSkill(42)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	err = svc.DeleteSkill(42)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCertificationLifecycle(t *testing.T) {
	setupTest(t)
	svc := NewCertificationService()

	created, err := svc.CreateCertification(dto.CertificationRequest{
		Name:   "CKA",
		Org:    "CNCF",
		Period: "2024 - 2027",
		Score:  "91",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateCertification(created.ID, dto.CertificationRequest{
		Name:   "CKA",
		Org:    "CNCF",
		Period: "2024 - 2027",
		Score:  "93",
	})
	require.NoError(t, err)
	assert.Equal(t, "93", updated.Score)

	require.NoError(t, svc.DeleteCertification(created.ID))
	_, err = svc.GetCertification(created.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
