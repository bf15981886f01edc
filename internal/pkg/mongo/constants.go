package mongo

const (
	store          = "devtasks"
	developerTable = "developer"
	taskTable      = "task"
)

var indexData = []IndexData{
	newIndexData(developerTable, true, "ID"),
	newIndexData(developerTable, true, "name"),
	newIndexData(taskTable, true, "ID"),
	newIndexData(taskTable, true, "provider", "name")}
