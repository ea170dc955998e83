package services_test

import (
	"encoding/json"
	"testing"

	"github.com/enterpriserag/backend/internal/dto"
	"github.com/enterpriserag/backend/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDocumentService(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewDocumentService(db)
	owner := uuid.New()

	t.Run("create requires a title", func(t *testing.T) {
		_, err := svc.Create("t1", owner, &dto.CreateDocumentRequest{})
		require.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("create stores tenant, owner and metadata", func(t *testing.T) {
		doc, err := svc.Create("t1", owner, &dto.CreateDocumentRequest{
			Title:    "Q3 report",
			Source:   "upload",
			Metadata: json.RawMessage(`{"pages": 12}`),
		})
		require.NoError(t, err)
		require.Equal(t, "t1", doc.TenantID)
		require.Equal(t, owner, doc.UploadedBy)
		require.JSONEq(t, `{"pages": 12}`, string(doc.Metadata))
	})

	t.Run("list is scoped to the tenant", func(t *testing.T) {
		_, err := svc.Create("t2", uuid.New(), &dto.CreateDocumentRequest{Title: "other tenant doc"})
		require.NoError(t, err)

		docs, err := svc.List("t1")
		require.NoError(t, err)
		require.Len(t, docs, 1)
		require.Equal(t, "Q3 report", docs[0].Title)

		docs, err = svc.List("t3")
		require.NoError(t, err)
		require.Empty(t, docs)
	})
}
