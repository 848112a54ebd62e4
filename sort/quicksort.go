package sort

// A partitionFunc rearranges the subrange [start, end] around a pivot
// and returns the pivot's final position. It is only called for
// subranges with at least two elements.
type partitionFunc[T Element] func(c *counter[T], start, end int) int

/*
quickSort sorts the subrange [start, end]. Both quicksort variants share
this recursion and differ only in the partition step.

Recursion depth is O(n) on degenerate partitions, for example sorted
input with lomutoPartition.
*/
func quickSort[T Element](c *counter[T], start, end int, partition partitionFunc[T]) {
	if start >= end {
		return
	}
	p := partition(c, start, end)
	quickSort(c, start, p-1, partition)
	quickSort(c, p+1, end, partition)
}

// lomutoPartition partitions around the leftmost element. Each smaller
// element is moved with two swaps, first next to the pivot, then past
// it, so the pivot always sits at boundary.
func lomutoPartition[T Element](c *counter[T], start, end int) int {
	pivot := c.data[start]
	boundary := start
	for i := start + 1; i <= end; i++ {
		if c.compare(c.data[i], pivot) {
			c.swap(boundary+1, i)
			c.swap(boundary, boundary+1)
			boundary++
		}
	}
	return boundary
}

// medianOfThree orders the first, middle, and last elements of [start,
// end] with up to three swaps and returns the middle position, which
// then holds their median.
func medianOfThree[T Element](c *counter[T], start, end int) int {
	mid := start + (end-start)/2
	if c.compare(c.data[end], c.data[start]) {
		c.swap(end, start)
	}
	if c.compare(c.data[mid], c.data[start]) {
		c.swap(mid, start)
	}
	if c.compare(c.data[end], c.data[mid]) {
		c.swap(end, mid)
	}
	return mid
}

/*
hoarePartition moves the median of three to end and uses it as the
pivot. i scans right while elements are smaller than the pivot, j scans
left while elements are greater; both move before their first test.
When the scans cross, the pivot is swapped to i.

The pivot at end bounds the i scan. The j scan may step one position
left of start: that element is an earlier pivot, which is never greater
than any element of the subrange, so the scan stops there. At index 0
there is no such element, and for a two element subrange the median
step can leave the larger element at start, so the scan also stops at 0.
*/
func hoarePartition[T Element](c *counter[T], start, end int) int {
	c.swap(medianOfThree(c, start, end), end)
	pivot := c.data[end]
	i, j := start-1, end
	for {
		for {
			i++
			if !c.compare(c.data[i], pivot) {
				break
			}
		}
		for {
			j--
			if !c.compare(pivot, c.data[j]) || j == 0 {
				break
			}
		}
		if i >= j {
			c.swap(i, end)
			return i
		}
		c.swap(i, j)
	}
}
