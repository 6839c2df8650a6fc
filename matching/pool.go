package matching

import "sync"

// levelNodePool reduces allocation churn from price levels opening and
// closing as the book empties and refills at a given price.
var levelNodePool = sync.Pool{
	New: func() interface{} {
		return &LevelNode{}
	},
}

// AcquireLevelNode gets a LevelNode from the pool, ready for price.
func AcquireLevelNode(price uint64) *LevelNode {
	node := levelNodePool.Get().(*LevelNode)
	node.PriceLevel = PriceLevel{Price: price}
	node.Parent, node.Left, node.Right, node.Balance = nil, nil, nil, 0
	return node
}

// ReleaseLevelNode returns a LevelNode to the pool once it has been
// unlinked from its tree.
func ReleaseLevelNode(node *LevelNode) {
	if node == nil {
		return
	}
	node.Parent, node.Left, node.Right = nil, nil, nil
	levelNodePool.Put(node)
}
