package task

// CompletionPercent returns the share of completed tasks as a whole
// percentage. Returns 0 if the slice is empty.
func CompletionPercent(tasks []Task) int {
	if len(tasks) == 0 {
		return 0
	}
	var done int
	for i := range tasks {
		if tasks[i].Completed {
			done++
		}
	}
	return done * 100 / len(tasks)
}
