package chat

import (
	"strings"
	"testing"

	"dmchat/internal/pkg/errs"
)

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		hasImage bool
		wantCode int
	}{
		{name: "text only", text: "hello", hasImage: false, wantCode: 0},
		{name: "image only", text: "", hasImage: true, wantCode: 0},
		{name: "text and image", text: "hello", hasImage: true, wantCode: 0},
		{name: "empty", text: "", hasImage: false, wantCode: errs.ErrMessageEmpty},
		{name: "text at limit", text: strings.Repeat("a", MaxTextBytes), hasImage: false, wantCode: 0},
		{name: "text over limit", text: strings.Repeat("a", MaxTextBytes+1), hasImage: false, wantCode: errs.ErrMessageContentTooLong},
		{name: "text over limit with image", text: strings.Repeat("a", MaxTextBytes+1), hasImage: true, wantCode: errs.ErrMessageContentTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContent(tt.text, tt.hasImage)

			if tt.wantCode == 0 {
				if err != nil {
					t.Fatalf("expected valid content, got %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("expected error code %d, got nil", tt.wantCode)
			}
			if err.Code != tt.wantCode {
				t.Fatalf("expected error code %d, got %d", tt.wantCode, err.Code)
			}
		})
	}
}
