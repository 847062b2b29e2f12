package response

import (
	"time"

	"campo-agenda/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type FieldResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromFieldView(view *queries.FieldView) *FieldResponse {
	var resp FieldResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromFieldViews(views []*queries.FieldView) []*FieldResponse {
	resps := make([]*FieldResponse, len(views))
	for i, v := range views {
		resps[i] = FromFieldView(v)
	}
	return resps
}
