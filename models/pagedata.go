package models

type PageData struct {
	Title          string
	Tasks          []Task
	CompletedTasks []Task
	Email          string
	Flash          string
}
