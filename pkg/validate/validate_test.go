package validate_test

import (
	"testing"

	"github.com/bitebasket/bitebasket/pkg/validate"
)

type menuItemInput struct {
	Name     string  `json:"name"     validate:"required,min=2,max=100"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
	Image    string  `json:"image"    validate:"required"`
	Category string  `json:"category" validate:"nullable,in=pizza,burger,salad,dessert"`
	Website  string  `json:"website"  validate:"nullable,url"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(menuItemInput{
		Name:     "Margherita Pizza",
		Price:    9.99,
		Image:    "https://img.example.com/margherita.jpg",
		Category: "pizza",
		Website:  "", // nullable, allowed to be empty
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(menuItemInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["price"]; !ok {
		t.Error("expected price to be required")
	}
	if _, ok := errs["image"]; !ok {
		t.Error("expected image to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Quantity int `json:"quantity" validate:"required,gte=1,lte=50"`
	}
	if errs := validate.Struct(in{Quantity: 51}); !validate.HasErrors(errs) {
		t.Error("expected quantity > 50 to fail")
	}
	if errs := validate.Struct(in{Quantity: 3}); validate.HasErrors(errs) {
		t.Errorf("expected quantity 3 to pass, got: %v", errs)
	}
}

func TestGtRule(t *testing.T) {
	type in struct {
		Price float64 `json:"price" validate:"required,gt=0"`
	}
	if errs := validate.Struct(in{Price: -1}); !validate.HasErrors(errs) {
		t.Error("expected negative price to fail")
	}
	if errs := validate.Struct(in{Price: 9.99}); validate.HasErrors(errs) {
		t.Errorf("expected positive price to pass: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Role string `json:"role" validate:"required,in=admin,user"`
	}
	if errs := validate.Struct(in{Role: "moderator"}); !validate.HasErrors(errs) {
		t.Error("expected invalid role to fail")
	}
	if errs := validate.Struct(in{Role: "admin"}); validate.HasErrors(errs) {
		t.Errorf("expected admin to pass: %v", errs)
	}
}

func TestInRuleFollowedByOtherRule(t *testing.T) {
	type in struct {
		Category string `json:"category" validate:"in=pizza,burger,max=20"`
	}
	if errs := validate.Struct(in{Category: "burger"}); validate.HasErrors(errs) {
		t.Errorf("expected burger to pass: %v", errs)
	}
	if errs := validate.Struct(in{Category: "sushi"}); !validate.HasErrors(errs) {
		t.Error("expected sushi to fail the in rule")
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Website string `json:"website" validate:"nullable,url"`
	}
	// Empty and nullable: every other rule is skipped.
	if errs := validate.Struct(in{Website: ""}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable to pass: %v", errs)
	}
	// Non-empty values still go through the url rule.
	if errs := validate.Struct(in{Website: "not-a-url"}); !validate.HasErrors(errs) {
		t.Error("expected invalid URL to fail")
	}
}

func TestURLRule(t *testing.T) {
	type in struct {
		Site string `json:"site" validate:"required,url"`
	}
	if errs := validate.Struct(in{Site: "https://example.com"}); validate.HasErrors(errs) {
		t.Errorf("expected valid URL to pass: %v", errs)
	}
	if errs := validate.Struct(in{Site: "not-a-url"}); !validate.HasErrors(errs) {
		t.Error("expected invalid URL to fail")
	}
}

func TestRequiredSlice(t *testing.T) {
	type in struct {
		Items []string `json:"items" validate:"required"`
	}
	if errs := validate.Struct(in{}); !validate.HasErrors(errs) {
		t.Error("expected empty items slice to fail")
	}
	if errs := validate.Struct(in{Items: []string{"a"}}); validate.HasErrors(errs) {
		t.Errorf("expected non-empty items to pass: %v", errs)
	}
}
