package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestToolkitError_MessageAndUnwrap(t *testing.T) {
	underlying := stderrors.New("bad yaml")
	err := &ToolkitError{Op: "wmtest.LoadRules", Kind: KindConfig, Err: underlying}

	msg := err.Error()
	if !strings.Contains(msg, "wmtest.LoadRules") || !strings.Contains(msg, "config") {
		t.Errorf("message %q should contain op and kind", msg)
	}
	if !stderrors.Is(err, underlying) {
		t.Error("errors.Is should see through ToolkitError")
	}
}

func TestPanicError_Message(t *testing.T) {
	err := &PanicError{Op: "wmtest.Runner step 2", Value: "boom"}
	if got := err.Error(); !strings.Contains(got, "step 2") || !strings.Contains(got, "boom") {
		t.Errorf("message %q should contain op and value", got)
	}

	bare := &PanicError{Value: 7}
	if got := bare.Error(); !strings.Contains(got, "panic: 7") {
		t.Errorf("message %q should fall back to bare form", got)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "TestCaptureStack") {
		t.Error("stack trace should contain the calling function")
	}
}
