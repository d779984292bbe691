package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Aqsa-Memon/TODO-APP/domain/task"
	taskstore "github.com/Aqsa-Memon/TODO-APP/modules/task"
)

// consoleUserID owns every task in the single-user console session.
const consoleUserID uint = 1

type app struct {
	repo task.Repository
	in   *bufio.Scanner
	out  *renderer
}

func main() {
	a := &app{
		repo: taskstore.NewMemoryRepository(),
		in:   bufio.NewScanner(os.Stdin),
		out:  newRenderer(defaultTheme()),
	}
	a.run()
}

func (a *app) run() {
	fmt.Println(a.out.welcome())

	for {
		fmt.Println(a.out.menu())
		choice, ok := a.promptInt("Choose an option")
		if !ok {
			return
		}

		switch choice {
		case 1:
			a.addTask()
		case 2:
			a.viewTasks()
		case 3:
			a.updateTask()
		case 4:
			a.toggleComplete()
		case 5:
			a.deleteTask()
		case 6:
			fmt.Println(a.out.notice("Goodbye!"))
			return
		default:
			fmt.Println(a.out.failure("Invalid choice. Try again."))
		}
	}
}

func (a *app) addTask() {
	title, ok := a.prompt("Task title")
	if !ok {
		return
	}
	description, ok := a.prompt("Description (optional)")
	if !ok {
		return
	}

	t := &task.Task{UserID: consoleUserID, Title: title, Description: description}
	if err := a.repo.Create(t); err != nil {
		fmt.Println(a.out.failure("Could not create task: %v", err))
		return
	}
	fmt.Println(a.out.success("Task #%d created: %s", t.ID, t.Title))
}

func (a *app) viewTasks() {
	tasks, err := a.repo.FindByUser(consoleUserID)
	if err != nil {
		fmt.Println(a.out.failure("Could not list tasks: %v", err))
		return
	}
	fmt.Println(a.out.taskTable(tasks))
}

func (a *app) updateTask() {
	a.viewTasks()
	id, ok := a.promptInt("Task ID to update")
	if !ok {
		return
	}

	t, err := a.repo.FindByID(consoleUserID, uint(id))
	if err != nil {
		fmt.Println(a.out.failure("Task not found"))
		return
	}

	// Empty input keeps the current value.
	if title, ok := a.prompt("New title (enter to skip)"); ok && title != "" {
		t.Title = title
	}
	if description, ok := a.prompt("New description (enter to skip)"); ok && description != "" {
		t.Description = description
	}

	if err := a.repo.Save(t); err != nil {
		fmt.Println(a.out.failure("Could not update task: %v", err))
		return
	}
	fmt.Println(a.out.success("Task #%d updated", t.ID))
}

func (a *app) toggleComplete() {
	a.viewTasks()
	id, ok := a.promptInt("Task ID to toggle")
	if !ok {
		return
	}

	t, err := a.repo.Toggle(consoleUserID, uint(id))
	if err != nil {
		fmt.Println(a.out.failure("Task not found"))
		return
	}
	state := "pending"
	if t.Completed {
		state = "completed"
	}
	fmt.Println(a.out.success("Task #%d marked as %s", t.ID, state))
}

func (a *app) deleteTask() {
	a.viewTasks()
	id, ok := a.promptInt("Task ID to delete")
	if !ok {
		return
	}

	if err := a.repo.Delete(consoleUserID, uint(id)); err != nil {
		fmt.Println(a.out.failure("Task not found"))
		return
	}
	fmt.Println(a.out.success("Task #%d deleted", id))
}

// prompt reads one trimmed line. ok is false on EOF.
func (a *app) prompt(label string) (string, bool) {
	fmt.Printf("%s: ", label)
	if !a.in.Scan() {
		fmt.Println()
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

// promptInt re-asks until the input parses as a non-negative integer.
func (a *app) promptInt(label string) (int, bool) {
	for {
		raw, ok := a.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			fmt.Println(a.out.failure("Please enter a number."))
			continue
		}
		return n, true
	}
}
