package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoque-digital/estoque-server/internal/store"
	"github.com/estoque-digital/estoque-server/models"
)

func TestListTeam(t *testing.T) {
	mocks := newTestServices()
	mocks.team.listFn = func(_ context.Context) ([]models.TeamMember, error) {
		return []models.TeamMember{{ID: 1, Username: "joao", Name: "João", Role: "Membro"}}, nil
	}
	router := newTestRouter(t, mocks)

	rec := doRequest(t, router, http.MethodGet, "/equipe", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var members []models.TeamMember
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &members))
	require.Len(t, members, 1)
	assert.Equal(t, "joao", members[0].Username)
}

func TestAddTeamMember_Success(t *testing.T) {
	mocks := newTestServices()
	mocks.team.addFn = func(_ context.Context, member models.TeamMember) (models.TeamMember, error) {
		member.ID = 2
		member.AddedAt = time.Now()
		return member, nil
	}
	router := newTestRouter(t, mocks)

	body := jsonBody(t, addMemberRequest{Username: "ana", Nome: "Ana", Cargo: "Suporte"})
	rec := doRequest(t, router, http.MethodPost, "/equipe", body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.MemberAddedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Member.ID)
	assert.Equal(t, "ana", resp.Member.Username)
}

func TestAddTeamMember_UsernameTaken(t *testing.T) {
	mocks := newTestServices()
	mocks.team.addFn = func(_ context.Context, _ models.TeamMember) (models.TeamMember, error) {
		return models.TeamMember{}, store.ErrUsernameAlreadyExists
	}
	router := newTestRouter(t, mocks)

	body := jsonBody(t, addMemberRequest{Username: "joao", Nome: "João"})
	rec := doRequest(t, router, http.MethodPost, "/equipe", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveTeamMember_Success(t *testing.T) {
	var removedID int64
	mocks := newTestServices()
	mocks.team.removeFn = func(_ context.Context, id int64) error {
		removedID = id
		return nil
	}
	router := newTestRouter(t, mocks)

	rec := doRequest(t, router, http.MethodDelete, "/equipe/3", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), removedID)
}

func TestRemoveTeamMember_BadID(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	rec := doRequest(t, router, http.MethodDelete, "/equipe/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveTeamMember_NotFound(t *testing.T) {
	mocks := newTestServices()
	mocks.team.removeFn = func(_ context.Context, _ int64) error {
		return store.ErrMemberNotFound
	}
	router := newTestRouter(t, mocks)

	rec := doRequest(t, router, http.MethodDelete, "/equipe/99", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
