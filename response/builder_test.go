package response

import (
	"testing"
	"time"

	"github.com/kbukum/servicekit/errors"
)

func TestBuilder_Build_Success(t *testing.T) {
	resp, err := OK(map[string]string{"name": "widget"}).
		ContentType("application/json").
		Header("X-Request-Id", "abc123").
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode())
	}
	if !resp.HasEntity() {
		t.Error("expected entity")
	}
	if resp.MediaType() != "application/json" {
		t.Errorf("expected application/json, got %q", resp.MediaType())
	}
	if resp.HeaderString("X-Request-Id") != "abc123" {
		t.Errorf("unexpected header: %q", resp.HeaderString("X-Request-Id"))
	}
}

func TestBuilder_StatusInfo_NilRejected(t *testing.T) {
	_, err := NewBuilder().StatusInfo(nil).Build()
	if err == nil {
		t.Fatal("expected error for nil status")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestBuilder_Status_OutOfRange(t *testing.T) {
	_, err := NewBuilder().Status(600).Build()
	if err == nil {
		t.Fatal("expected error for out-of-range code")
	}
	_, err = NewBuilder().Status(99).Build()
	if err == nil {
		t.Fatal("expected error for out-of-range code")
	}
}

func TestBuilder_Status_NonEnumeratedCode(t *testing.T) {
	resp, err := NewBuilder().Status(299).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != 299 {
		t.Errorf("expected 299, got %d", resp.StatusCode())
	}
	if resp.StatusInfo().Family() != Successful {
		t.Errorf("expected Successful family, got %v", resp.StatusInfo().Family())
	}
}

func TestBuilder_MissingStatus(t *testing.T) {
	_, err := NewBuilder().Entity("x").Build()
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeMissingField {
		t.Errorf("expected MISSING_FIELD, got %v", err)
	}
}

func TestBuilder_FirstErrorWins(t *testing.T) {
	_, err := NewBuilder().StatusInfo(nil).Status(600).Build()
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Details["field"] != "status" {
		t.Errorf("expected first recorded error, got %v", appErr.Details)
	}
}

func TestBuilder_Header_EmptyValueRemoves(t *testing.T) {
	resp, err := OK().
		Header("X-Extra", "one").
		Header("X-Extra", "").
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resp.HeaderString("X-Extra"); got != "" {
		t.Errorf("expected header removed, got %q", got)
	}
}

func TestBuilder_Allow_Normalized(t *testing.T) {
	resp, err := OK().Allow("get", "Post").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	methods := resp.AllowedMethods()
	if len(methods) != 2 || methods[0] != "GET" || methods[1] != "POST" {
		t.Errorf("expected [GET POST], got %v", methods)
	}
}

func TestBuilder_Tag_Quoted(t *testing.T) {
	resp, err := NotModified("v1").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.EntityTag() != `"v1"` {
		t.Errorf("expected quoted tag, got %q", resp.EntityTag())
	}
}

func TestInternalServerError_FamilyAndCode(t *testing.T) {
	resp, err := InternalServerError().Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != 500 {
		t.Errorf("expected 500, got %d", resp.StatusCode())
	}
	if resp.StatusInfo().Family() != ServerError {
		t.Errorf("expected ServerError family, got %v", resp.StatusInfo().Family())
	}
}

func TestBuilder_Created_Location(t *testing.T) {
	resp, err := Created("https://example.com/widgets/42").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != 201 {
		t.Errorf("expected 201, got %d", resp.StatusCode())
	}
	loc := resp.Location()
	if loc == nil || loc.Path != "/widgets/42" {
		t.Errorf("unexpected location: %v", loc)
	}
}

func TestBuilder_Link_Accessors(t *testing.T) {
	resp, err := OK().Link("https://example.com/next", "next").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.HasLink("next") {
		t.Fatal("expected next link")
	}
	link, _ := resp.Link("next")
	if link.URI.Host != "example.com" {
		t.Errorf("unexpected link URI: %v", link.URI)
	}
	if resp.HasLink("prev") {
		t.Error("did not expect prev link")
	}
}

func TestBuilder_TimeHeaders_RoundTrip(t *testing.T) {
	modified := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	resp, err := OK().LastModified(modified).Expires(modified.Add(time.Hour)).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := resp.LastModified()
	if !ok || !got.Equal(modified) {
		t.Errorf("expected %v, got %v (ok=%v)", modified, got, ok)
	}
	exp, ok := resp.Expires()
	if !ok || !exp.Equal(modified.Add(time.Hour)) {
		t.Errorf("unexpected expires: %v", exp)
	}
}

func TestFromResponse_Seeded(t *testing.T) {
	original, err := OK("entity").ContentType("text/plain").Link("https://example.com/next", "next").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rebuilt, err := FromResponse(original).Status(202).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rebuilt.StatusCode() != 202 {
		t.Errorf("expected 202, got %d", rebuilt.StatusCode())
	}
	if rebuilt.Entity() != "entity" {
		t.Errorf("expected seeded entity, got %v", rebuilt.Entity())
	}
	if rebuilt.MediaType() != "text/plain" {
		t.Errorf("expected seeded media type, got %q", rebuilt.MediaType())
	}
	if !rebuilt.HasLink("next") {
		t.Error("expected seeded link")
	}
}

func TestResponse_Immutable_HeadersCopy(t *testing.T) {
	resp, err := OK().Header("X-One", "1").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	headers := resp.Headers()
	headers.Set("X-One", "changed")
	if resp.HeaderString("X-One") != "1" {
		t.Error("mutating the returned headers must not affect the response")
	}
}
