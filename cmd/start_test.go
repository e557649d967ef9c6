package cmd

import "testing"

func TestStartCmd_Flags(t *testing.T) {
	preset := startCmd.Flags().Lookup("preset")
	if preset == nil {
		t.Fatal("startCmd should have --preset flag")
	}
	if preset.Shorthand != "p" {
		t.Errorf("preset flag shorthand = %q, want %q", preset.Shorthand, "p")
	}

	task := startCmd.Flags().Lookup("task")
	if task == nil {
		t.Fatal("startCmd should have --task flag")
	}
	if task.Shorthand != "t" {
		t.Errorf("task flag shorthand = %q, want %q", task.Shorthand, "t")
	}

	if startCmd.Flags().Lookup("tag") == nil {
		t.Error("startCmd should have --tag flag")
	}
	if startCmd.Flags().Lookup("duration") == nil {
		t.Error("startCmd should have --duration flag")
	}
}

func TestBreakCmd_Flags(t *testing.T) {
	long := breakCmd.Flags().Lookup("long")
	if long == nil {
		t.Fatal("breakCmd should have --long flag")
	}
	if long.Shorthand != "l" {
		t.Errorf("long flag shorthand = %q, want %q", long.Shorthand, "l")
	}
}

func TestStopCmd_Flags(t *testing.T) {
	if stopCmd.Flags().Lookup("discard") == nil {
		t.Error("stopCmd should have --discard flag")
	}
}

func TestExportCmd_Flags(t *testing.T) {
	format := exportCmd.Flags().Lookup("format")
	if format == nil {
		t.Fatal("exportCmd should have --format flag")
	}
	if format.DefValue != "md" {
		t.Errorf("format default = %q, want %q", format.DefValue, "md")
	}
}

func TestPlanAddCmd_Flags(t *testing.T) {
	if planAddCmd.Flags().Lookup("from") == nil {
		t.Error("plan add should have --from flag")
	}
	if planAddCmd.Flags().Lookup("to") == nil {
		t.Error("plan add should have --to flag")
	}
}
