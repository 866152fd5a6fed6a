package domain

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
	}{
		{"MOVE", ActionMove},
		{"move", ActionMove},
		{"Move", ActionMove},
		{"REST", ActionRest},
		{"descend", ActionDescend},
		{"pickup", ActionPickup},
		{"WAIT", ActionWait},
		{"ATTACK", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		result := ParseAction(tt.input)
		if result != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestActionType_String(t *testing.T) {
	tests := []struct {
		action   ActionType
		expected string
	}{
		{ActionMove, "MOVE"},
		{ActionAscend, "ASCEND"},
		{ActionDrop, "DROP"},
		{ActionQuit, "QUIT"},
		{ActionUnknown, "UNKNOWN"},
		{ActionType(200), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("ActionType(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

func TestCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		wantErr bool
	}{
		{"move", Move(1, -1), false},
		{"zero move", Move(0, 0), true},
		{"long move", Command{Action: ActionMove, Dx: 2}, true},
		{"wait", Simple(ActionWait), false},
		{"rest", Rest(5), false},
		{"rest nothing", Rest(0), true},
		{"unknown", Command{}, true},
		{"quit", Simple(ActionQuit), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
