package cli

import (
	"context"

	"github.com/registrarhq/registrar/internal/domain/enum"
)

func (a *App) userPortal(ctx context.Context) {
	a.println("")
	a.println("===== User Portal =====")
	a.println("1. Student")
	a.println("2. Teacher")
	a.println("3. Parent")
	a.println("4. Back")

	switch a.prompt("Select option: ") {
	case "1":
		a.portalLogin(ctx, enum.RoleStudent)
	case "2":
		a.portalLogin(ctx, enum.RoleTeacher)
	case "3":
		a.parentLogin(ctx)
	case "4":
		return
	default:
		a.println("Invalid option.")
	}
}

func (a *App) portalLogin(ctx context.Context, role enum.Role) {
	userID := a.prompt("ID: ")
	password := a.prompt("Password: ")

	if _, err := a.auth.Login(ctx, role, userID, password); err != nil {
		a.printErr(err)
		return
	}

	switch role {
	case enum.RoleStudent:
		a.studentPortal(ctx, userID)
	case enum.RoleTeacher:
		a.teacherPortal(ctx, userID)
	}
}

func (a *App) studentPortal(ctx context.Context, studentID string) {
	student, err := a.students.GetStudent(ctx, studentID)
	if err != nil {
		a.printErr(err)
		return
	}

	for {
		a.println("")
		a.printf("--- Student Portal: %s (%s) ---\n", student.Name, student.Section)
		a.println("1. My grades & GPA")
		a.println("2. My attendance")
		a.println("3. My invoices")
		a.println("4. Evaluate a teacher")
		a.println("5. Logout")

		switch a.prompt("Select option: ") {
		case "1":
			a.showGrades(ctx, studentID)
		case "2":
			subject := a.prompt("Subject: ")
			summary, err := a.students.AttendanceSummary(ctx, studentID, subject)
			if err != nil {
				a.printErr(err)
				break
			}
			a.printf("Present: %d  Tardy: %d  Absent: %d\n",
				summary[enum.AttendancePresent], summary[enum.AttendanceTardy], summary[enum.AttendanceAbsent])
		case "3":
			invoices, err := a.fees.ListInvoicesByStudent(ctx, studentID)
			if err != nil {
				a.printErr(err)
				break
			}
			if len(invoices) == 0 {
				a.println("No invoices.")
				break
			}
			for _, inv := range invoices {
				remaining, err := a.fees.RemainingBalance(ctx, inv.ID)
				if err != nil {
					a.printErr(err)
					continue
				}
				a.printf("  %s  %.2f due %s  [%s]  balance %.2f\n",
					inv.ID, inv.Amount, inv.DueDate, inv.Status, remaining)
			}
		case "4":
			_, err := a.evaluations.SubmitEvaluation(ctx, studentID,
				a.prompt("Teacher ID: "), a.promptInt("Rating (1-5): "), a.prompt("Comment: "))
			a.report(err, "Evaluation submitted.")
		case "5":
			return
		default:
			a.println("Invalid option.")
		}
	}
}

func (a *App) teacherPortal(ctx context.Context, teacherID string) {
	teacher, err := a.teachers.GetTeacher(ctx, teacherID)
	if err != nil {
		a.printErr(err)
		return
	}

	for {
		a.println("")
		a.printf("--- Teacher Portal: %s ---\n", teacher.Name)
		a.println("1. My schedules")
		a.println("2. My payroll history")
		a.println("3. My evaluation rating")
		a.println("4. File leave request")
		a.println("5. Logout")

		switch a.prompt("Select option: ") {
		case "1":
			for section, schedules := range teacher.Schedules {
				a.printf("%s:\n", section)
				for _, s := range schedules {
					a.printf("  %s %s-%s %s (%s)\n", s.Day, s.StartTime, s.EndTime, s.Subject, s.Room)
				}
			}
		case "2":
			records, err := a.payroll.ListPayrollsByTeacher(ctx, teacherID)
			if err != nil {
				a.printErr(err)
				break
			}
			for _, r := range records {
				a.printf("  %s  %s  net %.2f  [%s]\n", r.ID, r.PayoutPeriod, r.NetSalary, r.PaymentStatus)
			}
		case "3":
			avg, ok, err := a.evaluations.AverageRating(ctx, teacherID)
			if err != nil {
				a.printErr(err)
				break
			}
			if ok {
				a.printf("Average rating: %.2f\n", avg)
			} else {
				a.println("No evaluations yet.")
			}
		case "4":
			err := a.teachers.RequestLeave(ctx, teacherID,
				a.prompt("From (YYYY-MM-DD): "), a.prompt("To (YYYY-MM-DD): "), a.prompt("Reason: "))
			a.report(err, "Leave request filed.")
		case "5":
			return
		default:
			a.println("Invalid option.")
		}
	}
}

func (a *App) parentLogin(ctx context.Context) {
	parent, err := a.parents.Login(ctx, a.prompt("Email: "), a.prompt("Password: "))
	if err != nil {
		a.printErr(err)
		return
	}

	for {
		a.println("")
		a.printf("--- Parent Portal: %s ---\n", parent.Name)
		a.println("1. My children")
		a.println("2. Child grades")
		a.println("3. Notifications")
		a.println("4. Mark notification read")
		a.println("5. Logout")

		switch a.prompt("Select option: ") {
		case "1":
			for _, id := range parent.StudentIDs {
				student, err := a.students.GetStudent(ctx, id)
				if err != nil {
					a.printErr(err)
					continue
				}
				a.printf("  %s  %s (%s)\n", student.ID, student.Name, student.Section)
			}
		case "2":
			studentID := a.prompt("Student ID: ")
			if !parent.HasStudent(studentID) {
				a.println("That student is not linked to your account.")
				break
			}
			a.showGrades(ctx, studentID)
		case "3":
			unreadOnly := a.prompt("Unread only? (y/n): ") == "y"
			notifications, err := a.parents.Notifications(ctx, parent.ID, unreadOnly)
			if err != nil {
				a.printErr(err)
				break
			}
			if len(notifications) == 0 {
				a.println("No notifications.")
				break
			}
			for _, n := range notifications {
				marker := " "
				if !n.Read {
					marker = "*"
				}
				a.printf("%s [%s] %s\n    %s\n    (id %s)\n", marker, n.Category, n.Subject, n.Message, n.ID)
			}
		case "4":
			err := a.parents.MarkNotificationRead(ctx, a.prompt("Notification ID: "))
			a.report(err, "Marked read.")
		case "5":
			return
		default:
			a.println("Invalid option.")
		}
	}
}
