package matching

import "testing"

func TestLevelNodePoolAcquireRelease(t *testing.T) {
	node := AcquireLevelNode(100)
	if node == nil {
		t.Fatal("expected non-nil node from pool")
	}
	if node.Price != 100 {
		t.Errorf("expected price 100, got %d", node.Price)
	}
	if node.Parent != nil || node.Left != nil || node.Right != nil {
		t.Error("expected a freshly acquired node to have no tree linkage")
	}

	node.Push(RestingOrder{ID: 1, Qty: 5})
	ReleaseLevelNode(node)

	reused := AcquireLevelNode(200)
	if reused.Price != 200 {
		t.Errorf("expected reacquired node reinitialized to price 200, got %d", reused.Price)
	}
	if !reused.Empty() {
		t.Error("expected reacquired node's queue reset")
	}
}

func TestReleaseLevelNodeNil(t *testing.T) {
	ReleaseLevelNode(nil)
}
