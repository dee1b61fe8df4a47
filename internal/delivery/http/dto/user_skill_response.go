package dto

type AddUserSkillRequest struct {
	Skill string `json:"skill"`
}

type UserSkillsResponse struct {
	UserID int64    `json:"user_id"`
	Skills []string `json:"skills"`
}

type UserSkillChangeResponse struct {
	Message string `json:"message"`
	Skill   string `json:"skill"`
}

func NewUserSkillsResponse(userID int64, skills []string) UserSkillsResponse {
	return UserSkillsResponse{UserID: userID, Skills: NonNil(skills)}
}
