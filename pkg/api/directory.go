package api

type CreatePersonRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type CreatePersonResponse struct {
	Person *Person `json:"person"`
}

type ListPersonsRequest struct{}

type ListPersonsResponse struct {
	Persons []*Person `json:"persons"`
}

type DeletePersonRequest struct {
	PersonID string `json:"personId" validate:"required"`
}

type DeletePersonResponse struct{}

type CreateGroupRequest struct {
	Name      string   `json:"name" validate:"required,max=200"`
	MemberIDs []string `json:"memberIds" validate:"unique,dive,required"`
}

type CreateGroupResponse struct {
	Group *Group `json:"group"`
}

type GetGroupRequest struct {
	GroupID string `json:"groupId" validate:"required"`
}

type GetGroupResponse struct {
	Group *Group `json:"group"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

type DeleteGroupRequest struct {
	GroupID string `json:"groupId" validate:"required"`
}

type DeleteGroupResponse struct{}

type AddGroupMemberRequest struct {
	GroupID  string `json:"groupId" validate:"required"`
	PersonID string `json:"personId" validate:"required"`
}

type AddGroupMemberResponse struct {
	Group *Group `json:"group"`
}

type RemoveGroupMemberRequest struct {
	GroupID  string `json:"groupId" validate:"required"`
	PersonID string `json:"personId" validate:"required"`
}

type RemoveGroupMemberResponse struct {
	Group *Group `json:"group"`
}

type CreateOccasionRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

type CreateOccasionResponse struct {
	Occasion *Occasion `json:"occasion"`
}

type ListOccasionsRequest struct{}

type ListOccasionsResponse struct {
	Occasions []*Occasion `json:"occasions"`
}

type DeleteOccasionRequest struct {
	OccasionID string `json:"occasionId" validate:"required"`
}

type DeleteOccasionResponse struct{}
