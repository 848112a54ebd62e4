package sort

// selectionSort swaps once per start position, also when the minimum is
// already in place.
func selectionSort[T Element](c *counter[T]) {
	n := len(c.data)
	for start := 0; start < n-1; start++ {
		minIndex := start
		for i := start + 1; i < n; i++ {
			if c.compare(c.data[i], c.data[minIndex]) {
				minIndex = i
			}
		}
		c.swap(minIndex, start)
	}
}
