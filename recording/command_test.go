package recording

import (
	"testing"
)

func TestCommandType_String(t *testing.T) {
	tests := []struct {
		ct   CommandType
		want string
	}{
		{CmdDrawLine, "DrawLine"},
		{CmdDrawPath, "DrawPath"},
		{CmdDrawEllipse, "DrawEllipse"},
		{CmdDrawText, "DrawText"},
		{CmdDrawRectangle, "DrawRectangle"},
		{CommandType(254), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.ct.String(); got != tt.want {
				t.Errorf("CommandType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandInterface(t *testing.T) {
	commands := []Command{
		DrawLineCommand{},
		DrawPathCommand{},
		DrawEllipseCommand{},
		DrawTextCommand{},
		DrawRectangleCommand{},
	}
	expected := []CommandType{CmdDrawLine, CmdDrawPath, CmdDrawEllipse, CmdDrawText, CmdDrawRectangle}

	for i, cmd := range commands {
		if got := cmd.Type(); got != expected[i] {
			t.Errorf("commands[%d].Type() = %v, want %v", i, got, expected[i])
		}
	}
}

func TestInvalidRef(t *testing.T) {
	if PathRef(InvalidRef).IsValid() {
		t.Error("PathRef(InvalidRef) should be invalid")
	}
	if PenRef(InvalidRef).IsValid() {
		t.Error("PenRef(InvalidRef) should be invalid")
	}
	if BrushRef(InvalidRef).IsValid() {
		t.Error("BrushRef(InvalidRef) should be invalid")
	}
	if !PathRef(0).IsValid() {
		t.Error("PathRef(0) should be valid")
	}
}
