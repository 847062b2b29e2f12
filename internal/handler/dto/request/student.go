package request

type EnrollStudentRequest struct {
	Name            string `json:"name" binding:"required"`
	GuardianName    string `json:"guardianName"`
	GuardianContact string `json:"guardianContact" binding:"required"`
	Age             int    `json:"age" binding:"min=0"`
}

// Update is partial: absent fields keep their stored values.
type UpdateStudentRequest struct {
	Name            *string `json:"name"`
	GuardianName    *string `json:"guardianName"`
	GuardianContact *string `json:"guardianContact"`
	Age             *int    `json:"age"`
}
