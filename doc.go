// Package sortmeter measures the cost of sorting algorithms by counting
// the operations they perform instead of timing them. Every comparison
// and every swap an algorithm makes is counted, which exposes the
// asymptotic behavior of an algorithm on a given input exactly and
// reproducibly.
//
// Sortmeter provides the following subpackages:
//
// sortmeter/sort provides the instrumented sort engine and its three
// algorithms: selection sort, quicksort with Lomuto's partition scheme,
// and quicksort with Hoare's partition scheme and a median-of-three
// pivot. It sorts signed integers, or text case-insensitively.
//
// sortmeter/compare runs several algorithms over independent copies of
// the same data, repeats this over random trials, and summarizes the
// counts in text, Markdown, or JSON.
//
// sortmeter/parallel and sortmeter/sequential run independent units of
// work, such as engines that each own their own sequence, either in
// parallel or one after the other.
//
// The sortmeter command in cmd/sortmeter is a command line front end for
// the sort and compare packages.
package sortmeter
