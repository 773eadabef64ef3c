package institution

import "careerassign/internal/common"

type Institution struct {
	ID      common.UUID `json:"id"`
	Name    string      `json:"name"`
	Address string      `json:"address"`
	OwnerID common.UUID `json:"owner_id,omitempty"`
}

type Faculty struct {
	ID            common.UUID `json:"id"`
	InstitutionID common.UUID `json:"institution_id"`
	Name          string      `json:"name"`
}
