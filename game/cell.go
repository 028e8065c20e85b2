package game

import "fmt"

type ActionType int

const (
	Click ActionType = iota
	RightClick
	MiddleClick
)

func (action ActionType) String() string {
	switch action {
	case Click:
		return "click"
	case RightClick:
		return "right-click"
	case MiddleClick:
		return "middle-click"
	default:
		return fmt.Sprint(int(action))
	}
}

// CellAction is a single player move on the cell at (X, Y).
type CellAction struct {
	X, Y   int
	Action ActionType
}

func (action CellAction) String() string {
	return fmt.Sprintf("%s(%d, %d)", action.Action, action.X, action.Y)
}

func ClickAt(x, y int) CellAction {
	return CellAction{X: x, Y: y, Action: Click}
}

func RightClickAt(x, y int) CellAction {
	return CellAction{X: x, Y: y, Action: RightClick}
}

func MiddleClickAt(x, y int) CellAction {
	return CellAction{X: x, Y: y, Action: MiddleClick}
}
