package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/giftshuffler/pkg/api"
)

func TestCreatePerson(t *testing.T) {
	c := setupTestServer(t)

	resp, err := c.directory.CreatePerson(context.Background(), connect.NewRequest(&api.CreatePersonRequest{
		Name: "  Alice  ",
	}))
	if err != nil {
		t.Fatalf("CreatePerson failed: %v", err)
	}

	if resp.Msg.Person.ID == "" {
		t.Error("expected non-empty person ID")
	}
	if resp.Msg.Person.Name != "Alice" {
		t.Errorf("name: expected 'Alice', got '%s'", resp.Msg.Person.Name)
	}
	if resp.Msg.Person.CreatedAt == 0 {
		t.Error("expected non-zero CreatedAt")
	}
}

func TestCreatePerson_Validation(t *testing.T) {
	c := setupTestServer(t)

	tests := []struct {
		name string
		req  *api.CreatePersonRequest
	}{
		{name: "empty name", req: &api.CreatePersonRequest{Name: ""}},
		{name: "whitespace name", req: &api.CreatePersonRequest{Name: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.directory.CreatePerson(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestListPersons(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	for _, name := range []string{"Carol", "Alice", "Bob"} {
		if _, err := c.directory.CreatePerson(ctx, connect.NewRequest(&api.CreatePersonRequest{Name: name})); err != nil {
			t.Fatalf("CreatePerson failed: %v", err)
		}
	}

	resp, err := c.directory.ListPersons(ctx, connect.NewRequest(&api.ListPersonsRequest{}))
	if err != nil {
		t.Fatalf("ListPersons failed: %v", err)
	}

	want := []string{"Alice", "Bob", "Carol"}
	if len(resp.Msg.Persons) != len(want) {
		t.Fatalf("expected %d persons, got %d", len(want), len(resp.Msg.Persons))
	}
	for i, p := range resp.Msg.Persons {
		if p.Name != want[i] {
			t.Errorf("person %d: expected '%s', got '%s'", i, want[i], p.Name)
		}
	}
}

func TestGroupMembership(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	group := createGroup(t, c, "Family", "Bob", "Alice")
	if len(group.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(group.Members))
	}
	if group.Members[0].Name != "Alice" {
		t.Errorf("expected members ordered by name, got %s first", group.Members[0].Name)
	}

	carol, err := c.directory.CreatePerson(ctx, connect.NewRequest(&api.CreatePersonRequest{Name: "Carol"}))
	if err != nil {
		t.Fatalf("CreatePerson failed: %v", err)
	}

	t.Run("add member", func(t *testing.T) {
		resp, err := c.directory.AddGroupMember(ctx, connect.NewRequest(&api.AddGroupMemberRequest{
			GroupID:  group.ID,
			PersonID: carol.Msg.Person.ID,
		}))
		if err != nil {
			t.Fatalf("AddGroupMember failed: %v", err)
		}
		if len(resp.Msg.Group.Members) != 3 {
			t.Errorf("expected 3 members, got %d", len(resp.Msg.Group.Members))
		}
	})

	t.Run("add member twice", func(t *testing.T) {
		resp, err := c.directory.AddGroupMember(ctx, connect.NewRequest(&api.AddGroupMemberRequest{
			GroupID:  group.ID,
			PersonID: carol.Msg.Person.ID,
		}))
		if err != nil {
			t.Fatalf("AddGroupMember failed: %v", err)
		}
		if len(resp.Msg.Group.Members) != 3 {
			t.Errorf("expected 3 members, got %d", len(resp.Msg.Group.Members))
		}
	})

	t.Run("add unknown person", func(t *testing.T) {
		_, err := c.directory.AddGroupMember(ctx, connect.NewRequest(&api.AddGroupMemberRequest{
			GroupID:  group.ID,
			PersonID: "missing",
		}))
		assertCode(t, err, connect.CodeNotFound)
	})

	t.Run("remove member", func(t *testing.T) {
		resp, err := c.directory.RemoveGroupMember(ctx, connect.NewRequest(&api.RemoveGroupMemberRequest{
			GroupID:  group.ID,
			PersonID: carol.Msg.Person.ID,
		}))
		if err != nil {
			t.Fatalf("RemoveGroupMember failed: %v", err)
		}
		if len(resp.Msg.Group.Members) != 2 {
			t.Errorf("expected 2 members, got %d", len(resp.Msg.Group.Members))
		}
	})

	t.Run("deleting a person removes the membership", func(t *testing.T) {
		_, err := c.directory.DeletePerson(ctx, connect.NewRequest(&api.DeletePersonRequest{
			PersonID: group.Members[0].ID,
		}))
		if err != nil {
			t.Fatalf("DeletePerson failed: %v", err)
		}

		resp, err := c.directory.GetGroup(ctx, connect.NewRequest(&api.GetGroupRequest{GroupID: group.ID}))
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if len(resp.Msg.Group.Members) != 1 {
			t.Errorf("expected 1 member, got %d", len(resp.Msg.Group.Members))
		}
	})
}

func TestCreateGroup_Validation(t *testing.T) {
	c := setupTestServer(t)

	tests := []struct {
		name string
		req  *api.CreateGroupRequest
		want connect.Code
	}{
		{
			name: "empty name",
			req:  &api.CreateGroupRequest{Name: " "},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "duplicate member",
			req:  &api.CreateGroupRequest{Name: "Family", MemberIDs: []string{"a", "a"}},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "unknown member",
			req:  &api.CreateGroupRequest{Name: "Family", MemberIDs: []string{"missing"}},
			want: connect.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.directory.CreateGroup(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, err, tt.want)
		})
	}
}

func TestGetGroup_NotFound(t *testing.T) {
	c := setupTestServer(t)

	_, err := c.directory.GetGroup(context.Background(), connect.NewRequest(&api.GetGroupRequest{
		GroupID: "non-existent-id",
	}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestListGroups(t *testing.T) {
	c := setupTestServer(t)

	createGroup(t, c, "Work", "Diana", "Eve")
	createGroup(t, c, "Family", "Alice", "Bob")

	resp, err := c.directory.ListGroups(context.Background(), connect.NewRequest(&api.ListGroupsRequest{}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(resp.Msg.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(resp.Msg.Groups))
	}
	if resp.Msg.Groups[0].Name != "Family" {
		t.Errorf("expected groups ordered by name, got %s first", resp.Msg.Groups[0].Name)
	}
}

func TestOccasions(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	resp, err := c.directory.CreateOccasion(ctx, connect.NewRequest(&api.CreateOccasionRequest{
		Name:        " Christmas ",
		Description: "Yearly gift exchange",
	}))
	if err != nil {
		t.Fatalf("CreateOccasion failed: %v", err)
	}
	if resp.Msg.Occasion.Name != "Christmas" {
		t.Errorf("name: expected 'Christmas', got '%s'", resp.Msg.Occasion.Name)
	}

	list, err := c.directory.ListOccasions(ctx, connect.NewRequest(&api.ListOccasionsRequest{}))
	if err != nil {
		t.Fatalf("ListOccasions failed: %v", err)
	}
	if len(list.Msg.Occasions) != 1 || list.Msg.Occasions[0].Description != "Yearly gift exchange" {
		t.Errorf("unexpected occasions %+v", list.Msg.Occasions)
	}

	if _, err := c.directory.DeleteOccasion(ctx, connect.NewRequest(&api.DeleteOccasionRequest{
		OccasionID: resp.Msg.Occasion.ID,
	})); err != nil {
		t.Fatalf("DeleteOccasion failed: %v", err)
	}

	_, err = c.directory.DeleteOccasion(ctx, connect.NewRequest(&api.DeleteOccasionRequest{
		OccasionID: resp.Msg.Occasion.ID,
	}))
	assertCode(t, err, connect.CodeNotFound)
}
