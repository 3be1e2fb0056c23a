package apiconnect

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/giftshuffler/pkg/api"
)

type echoDirectory struct {
	UnimplementedDirectoryServiceHandler
}

func (echoDirectory) CreatePerson(_ context.Context, req *connect.Request[api.CreatePersonRequest]) (*connect.Response[api.CreatePersonResponse], error) {
	return connect.NewResponse(&api.CreatePersonResponse{
		Person: &api.Person{ID: "p-1", Name: req.Msg.Name, CreatedAt: 42},
	}), nil
}

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	path, handler := NewDirectoryServiceHandler(echoDirectory{})
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestJSONRoundTrip(t *testing.T) {
	server := setupServer(t)
	client := NewDirectoryServiceClient(server.Client(), server.URL+"/")

	resp, err := client.CreatePerson(context.Background(), connect.NewRequest(&api.CreatePersonRequest{Name: "Alice"}))
	if err != nil {
		t.Fatalf("CreatePerson failed: %v", err)
	}
	if resp.Msg.Person.Name != "Alice" || resp.Msg.Person.ID != "p-1" {
		t.Errorf("unexpected person %+v", resp.Msg.Person)
	}
}

func TestUnimplemented(t *testing.T) {
	server := setupServer(t)
	client := NewDirectoryServiceClient(server.Client(), server.URL)

	_, err := client.ListPersons(context.Background(), connect.NewRequest(&api.ListPersonsRequest{}))
	if connect.CodeOf(err) != connect.CodeUnimplemented {
		t.Errorf("expected CodeUnimplemented, got %v", err)
	}
}

func TestPlainHTTPPost(t *testing.T) {
	server := setupServer(t)

	resp, err := http.Post(server.URL+DirectoryServiceCreatePersonProcedure, "application/json", strings.NewReader(`{"name":"Bob"}`))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	missing, err := http.Post(server.URL+"/giftshuffler.v1.DirectoryService/Nope", "application/json", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", missing.StatusCode)
	}
}
