package cli

import (
	"context"

	"github.com/registrarhq/registrar/internal/application/service"
	"github.com/registrarhq/registrar/internal/domain/entity"
	"github.com/registrarhq/registrar/internal/domain/enum"
	"github.com/registrarhq/registrar/pkg/pagination"
)

func (a *App) adminMenu(ctx context.Context, username string) {
	for {
		a.println("")
		a.printf("===== Admin Portal (%s) =====\n", username)
		a.println("1. Students")
		a.println("2. Teachers")
		a.println("3. Courses & Sections")
		a.println("4. Fees & Invoices")
		a.println("5. Payroll")
		a.println("6. Parents & Notifications")
		a.println("7. Financial Summary")
		a.println("8. Change Password")
		a.println("9. Logout")

		switch a.prompt("Select option: ") {
		case "1":
			a.studentMenu(ctx)
		case "2":
			a.teacherMenu(ctx)
		case "3":
			a.courseMenu(ctx)
		case "4":
			a.feeMenu(ctx)
		case "5":
			a.payrollMenu(ctx)
		case "6":
			a.parentMenu(ctx)
		case "7":
			a.showFinancialSummary(ctx)
		case "8":
			err := a.auth.ChangeAdminPassword(ctx, username,
				a.prompt("Current password: "), a.prompt("New password: "))
			if err != nil {
				a.printErr(err)
			} else {
				a.println("Password changed.")
			}
		case "9":
			return
		default:
			a.println("Invalid option.")
		}
	}
}

func (a *App) studentMenu(ctx context.Context) {
	for {
		a.println("")
		a.println("--- Students ---")
		a.println("1. Register student")
		a.println("2. List students")
		a.println("3. Enroll in subject")
		a.println("4. Mark attendance")
		a.println("5. Record exam score")
		a.println("6. Add activity")
		a.println("7. View grades & GPA")
		a.println("8. Exempt from subject")
		a.println("9. Back")

		switch a.prompt("Select option: ") {
		case "1":
			student, err := a.students.CreateStudent(ctx, &service.CreateStudentInput{
				Name:    a.prompt("Name: "),
				Contact: a.prompt("Contact: "),
				Section: a.prompt("Section (COURSE-YEAR-SECTION): "),
			})
			if err != nil {
				a.printErr(err)
				break
			}
			a.printf("Registered %s with ID %s\n", student.Name, student.ID)
		case "2":
			students, err := a.students.ListStudents(ctx)
			if err != nil {
				a.printErr(err)
				break
			}
			a.pageStudents(students)
		case "3":
			err := a.students.EnrollSubject(ctx, a.prompt("Student ID: "), a.prompt("Subject: "))
			a.report(err, "Enrolled.")
		case "4":
			err := a.students.MarkAttendance(ctx,
				a.prompt("Student ID: "), a.prompt("Subject: "),
				a.prompt("Date (YYYY-MM-DD): "),
				enum.AttendanceStatus(a.prompt("Status (present/absent/tardy): ")))
			a.report(err, "Attendance recorded.")
		case "5":
			err := a.students.RecordExam(ctx,
				a.prompt("Student ID: "), a.prompt("Subject: "),
				enum.ExamType(a.prompt("Exam (prelim/midterm/finals): ")),
				a.promptFloat("Score (0-100): "))
			a.report(err, "Exam recorded.")
		case "6":
			_, err := a.students.AddActivity(ctx,
				a.prompt("Student ID: "), a.prompt("Subject: "),
				a.promptInt("Total items: "), a.promptInt("Correct answers: "))
			a.report(err, "Activity recorded.")
		case "7":
			a.showGrades(ctx, a.prompt("Student ID: "))
		case "8":
			err := a.students.ExemptSubject(ctx, a.prompt("Student ID: "), a.prompt("Subject: "))
			a.report(err, "Exempted.")
		case "9":
			return
		default:
			a.println("Invalid option.")
		}
	}
}

func (a *App) showGrades(ctx context.Context, studentID string) {
	grades, err := a.students.SubjectGrades(ctx, studentID)
	if err != nil {
		a.printErr(err)
		return
	}
	if len(grades) == 0 {
		a.println("No graded subjects yet.")
		return
	}
	for subject, grade := range grades {
		a.printf("  %-20s %.2f\n", subject, grade)
	}

	gpa, ok, err := a.students.GPA(ctx, studentID)
	if err != nil {
		a.printErr(err)
		return
	}
	if ok {
		a.printf("GPA: %.2f\n", gpa)
	} else {
		a.println("GPA: not available")
	}
}

// pageStudents lists students nine at a time, paging on demand
func (a *App) pageStudents(students []entity.Student) {
	params := pagination.DefaultPagination()
	for {
		page := pagination.Paginate(students, params)
		for _, s := range page.Items {
			a.printf("  %s  %-20s %s (%s)\n", s.ID, s.Name, s.Section, s.Status)
		}
		a.printf("Page %d of %d (%d students)\n",
			page.Pagination.CurrentPage, page.Pagination.TotalPages, page.Pagination.Total)

		if !page.Pagination.HasNext && !page.Pagination.HasPrev {
			return
		}
		switch a.prompt("n=next, p=prev, q=done: ") {
		case "n":
			params.Page++
		case "p":
			params.Page--
		default:
			return
		}
	}
}

func (a *App) teacherMenu(ctx context.Context) {
	for {
		a.println("")
		a.println("--- Teachers ---")
		a.println("1. Register teacher")
		a.println("2. List teachers")
		a.println("3. Add qualification")
		a.println("4. Add subject taught")
		a.println("5. Add schedule")
		a.println("6. View schedules")
		a.println("7. File leave request")
		a.println("8. Back")

		switch a.prompt("Select option: ") {
		case "1":
			teacher, err := a.teachers.CreateTeacher(ctx, &service.CreateTeacherInput{
				Name:  a.prompt("Name: "),
				Email: a.prompt("Email: "),
				Phone: a.prompt("Phone: "),
			})
			if err != nil {
				a.printErr(err)
				break
			}
			a.printf("Registered %s with ID %s\n", teacher.Name, teacher.ID)
		case "2":
			teachers, err := a.teachers.ListTeachers(ctx)
			if err != nil {
				a.printErr(err)
				break
			}
			for _, t := range teachers {
				a.printf("  %s  %-20s %s\n", t.ID, t.Name, t.Email)
			}
		case "3":
			err := a.teachers.AddQualification(ctx, a.prompt("Teacher ID: "), a.prompt("Qualification: "))
			a.report(err, "Qualification added.")
		case "4":
			err := a.teachers.AddSubject(ctx, a.prompt("Teacher ID: "), a.prompt("Subject: "))
			a.report(err, "Subject added.")
		case "5":
			err := a.teachers.AddSchedule(ctx, a.prompt("Teacher ID: "), &service.AddScheduleInput{
				Section:   a.prompt("Section: "),
				Subject:   a.prompt("Subject: "),
				Day:       a.prompt("Day: "),
				StartTime: a.prompt("Start (HH:MM): "),
				EndTime:   a.prompt("End (HH:MM): "),
				Room:      a.prompt("Room: "),
			})
			a.report(err, "Schedule added.")
		case "6":
			schedules, err := a.teachers.Schedules(ctx, a.prompt("Teacher ID: "), a.prompt("Section: "))
			if err != nil {
				a.printErr(err)
				break
			}
			for i, s := range schedules {
				a.printf("  [%d] %s %s-%s %s (%s)\n", i, s.Day, s.StartTime, s.EndTime, s.Subject, s.Room)
			}
		case "7":
			err := a.teachers.RequestLeave(ctx, a.prompt("Teacher ID: "),
				a.prompt("From (YYYY-MM-DD): "), a.prompt("To (YYYY-MM-DD): "), a.prompt("Reason: "))
			a.report(err, "Leave request filed.")
		case "8":
			return
		default:
			a.println("Invalid option.")
		}
	}
}

func (a *App) courseMenu(ctx context.Context) {
	for {
		a.println("")
		a.println("--- Courses & Sections ---")
		a.println("1. Create course")
		a.println("2. List courses")
		a.println("3. Add section")
		a.println("4. Add subject to section")
		a.println("5. Add subject to whole year")
		a.println("6. Add section schedule")
		a.println("7. Back")

		switch a.prompt("Select option: ") {
		case "1":
			course, err := a.courses.CreateCourse(ctx, &service.CreateCourseInput{
				Code:        a.prompt("Code: "),
				Name:        a.prompt("Name: "),
				Description: a.prompt("Description: "),
			})
			if err != nil {
				a.printErr(err)
				break
			}
			a.printf("Created course %s\n", course.Code)
		case "2":
			courses, err := a.courses.ListCourses(ctx)
			if err != nil {
				a.printErr(err)
				break
			}
			for _, c := range courses {
				a.printf("  %-8s %s\n", c.Code, c.Name)
			}
		case "3":
			err := a.courses.AddSection(ctx, a.prompt("Course code: "),
				a.promptInt("Year (1-4): "), a.promptInt("Section number: "))
			a.report(err, "Section added.")
		case "4":
			err := a.courses.AddSubjectToSection(ctx, a.prompt("Course code: "),
				a.promptInt("Year: "), a.promptInt("Section number: "), a.prompt("Subject: "))
			a.report(err, "Subject added.")
		case "5":
			added, err := a.courses.AddSubjectToYear(ctx, a.prompt("Course code: "),
				a.promptInt("Year: "), a.prompt("Subject: "))
			if err != nil {
				a.printErr(err)
				break
			}
			a.printf("Added to %d sections.\n", added)
		case "6":
			err := a.courses.AddSectionSchedule(ctx, a.prompt("Course code: "),
				a.promptInt("Year: "), a.promptInt("Section number: "), entity.Schedule{
					Subject:   a.prompt("Subject: "),
					Day:       a.prompt("Day: "),
					StartTime: a.prompt("Start (HH:MM): "),
					EndTime:   a.prompt("End (HH:MM): "),
					Room:      a.prompt("Room: "),
				})
			a.report(err, "Schedule added.")
		case "7":
			return
		default:
			a.println("Invalid option.")
		}
	}
}

func (a *App) feeMenu(ctx context.Context) {
	for {
		a.println("")
		a.println("--- Fees & Invoices ---")
		a.println("1. Create particular")
		a.println("2. Set subject fee")
		a.println("3. Select particular for course-year")
		a.println("4. Show fee breakdown")
		a.println("5. Generate section invoices")
		a.println("6. Create custom invoice")
		a.println("7. Record payment")
		a.println("8. View student invoices")
		a.println("9. Back")

		switch a.prompt("Select option: ") {
		case "1":
			_, err := a.fees.CreateParticular(ctx, &service.CreateParticularInput{
				Name:        a.prompt("Name: "),
				Amount:      a.promptFloat("Amount: "),
				Description: a.prompt("Description: "),
			})
			a.report(err, "Particular created.")
		case "2":
			err := a.fees.SetSubjectFee(ctx, a.prompt("Course code: "),
				a.promptInt("Year: "), a.prompt("Subject: "), a.promptFloat("Amount: "))
			a.report(err, "Subject fee set.")
		case "3":
			err := a.fees.SelectParticular(ctx, a.prompt("Course code: "),
				a.promptInt("Year: "), a.prompt("Particular name: "))
			a.report(err, "Particular selected.")
		case "4":
			a.showFeeBreakdown(ctx)
		case "5":
			issued, err := a.fees.GenerateSectionInvoices(ctx, a.prompt("Course code: "),
				a.promptInt("Year: "), a.prompt("Due date (YYYY-MM-DD): "))
			if err != nil {
				a.printErr(err)
				break
			}
			a.printf("Issued %d invoices.\n", len(issued))
		case "6":
			invoice, err := a.fees.CreateCustomInvoice(ctx, a.prompt("Student ID: "),
				a.prompt("Description: "), a.promptFloat("Amount: "), a.prompt("Due date (YYYY-MM-DD): "))
			if err != nil {
				a.printErr(err)
				break
			}
			a.printf("Issued invoice %s for %.2f\n", invoice.ID, invoice.Amount)
		case "7":
			payment, err := a.fees.RecordPayment(ctx, a.prompt("Invoice ID: "), a.promptFloat("Amount: "))
			if err != nil {
				a.printErr(err)
				break
			}
			remaining, err := a.fees.RemainingBalance(ctx, payment.InvoiceID)
			if err != nil {
				a.printErr(err)
				break
			}
			a.printf("Payment %s recorded. Remaining balance: %.2f\n", payment.ID, remaining)
		case "8":
			invoices, err := a.fees.ListInvoicesByStudent(ctx, a.prompt("Student ID: "))
			if err != nil {
				a.printErr(err)
				break
			}
			for _, inv := range invoices {
				a.printf("  %s  %.2f  due %s  [%s]\n", inv.ID, inv.Amount, inv.DueDate, inv.Status)
			}
		case "9":
			return
		default:
			a.println("Invalid option.")
		}
	}
}

func (a *App) showFeeBreakdown(ctx context.Context) {
	code := a.prompt("Course code: ")
	year := a.promptInt("Year: ")

	breakdown, err := a.fees.FeeBreakdown(ctx, code, year)
	if err != nil {
		a.printErr(err)
		return
	}
	total := 0.0
	for label, amount := range breakdown {
		a.printf("  %-30s %10.2f\n", label, amount)
		total += amount
	}
	a.printf("  %-30s %10.2f\n", "TOTAL", total)
}

func (a *App) payrollMenu(ctx context.Context) {
	for {
		a.println("")
		a.println("--- Payroll ---")
		a.println("1. Set workload rate")
		a.println("2. Set base salary")
		a.println("3. Set deduction rates")
		a.println("4. Add bonus")
		a.println("5. Run payroll")
		a.println("6. View breakdown")
		a.println("7. Finalize payout")
		a.println("8. Back")

		switch a.prompt("Select option: ") {
		case "1":
			err := a.payroll.SetWorkloadRate(ctx, a.prompt("Subject: "), a.promptFloat("Rate per day: "))
			a.report(err, "Rate set.")
		case "2":
			err := a.payroll.SetBaseSalary(ctx, a.promptFloat("Base salary per fortnight: "))
			a.report(err, "Base salary set.")
		case "3":
			err := a.payroll.SetDeductionConfig(ctx,
				a.promptFloat("Tax rate (%): "),
				a.promptFloat("SSS rate (%): "),
				a.promptFloat("Absence rate per day: "))
			a.report(err, "Deduction rates set.")
		case "4":
			bonus, err := a.payroll.AddBonus(ctx, a.prompt("Name: "), a.promptFloat("Amount: "))
			if err != nil {
				a.printErr(err)
				break
			}
			a.printf("Added bonus %s (%s)\n", bonus.Name, bonus.ID)
		case "5":
			a.runPayroll(ctx)
		case "6":
			a.showPayrollBreakdown(ctx, a.prompt("Payroll ID: "))
		case "7":
			record, err := a.payroll.FinalizePayroll(ctx, a.prompt("Payroll ID: "))
			if err != nil {
				a.printErr(err)
				break
			}
			a.printf("Paid out %.2f on %s\n", record.NetSalary, record.PayoutDate)
		case "8":
			return
		default:
			a.println("Invalid option.")
		}
	}
}

func (a *App) runPayroll(ctx context.Context) {
	input := &service.CreatePayrollInput{
		TeacherID:     a.prompt("Teacher ID: "),
		PayoutPeriod:  a.prompt("Payout period (YYYY-MM-A|B): "),
		DaysPresent:   a.promptInt("Days present (0-14): "),
		OvertimeHours: a.promptFloat("Overtime hours: "),
	}
	for {
		id := a.prompt("Bonus ID (blank to finish): ")
		if id == "" {
			break
		}
		input.SelectedBonusIDs = append(input.SelectedBonusIDs, id)
	}

	record, err := a.payroll.CreatePayroll(ctx, input)
	if err != nil {
		a.printErr(err)
		return
	}
	a.printf("Payroll %s created. Net salary: %.2f\n", record.ID, record.NetSalary)
}

func (a *App) showPayrollBreakdown(ctx context.Context, id string) {
	breakdown, err := a.payroll.Breakdown(ctx, id)
	if err != nil {
		a.printErr(err)
		return
	}

	a.println("Earnings:")
	for label, amount := range breakdown.Earnings {
		a.printf("  %-20s %10.2f\n", label, amount)
	}
	a.println("Deductions:")
	for label, amount := range breakdown.Deductions {
		a.printf("  %-20s %10.2f\n", label, amount)
	}
	a.printf("Gross: %.2f   Net: %.2f\n", breakdown.Gross, breakdown.Net)
}

func (a *App) parentMenu(ctx context.Context) {
	for {
		a.println("")
		a.println("--- Parents & Notifications ---")
		a.println("1. Register parent")
		a.println("2. Link student")
		a.println("3. Send notification")
		a.println("4. Back")

		switch a.prompt("Select option: ") {
		case "1":
			parent, err := a.parents.CreateParent(ctx, &service.CreateParentInput{
				Name:     a.prompt("Name: "),
				Email:    a.prompt("Email: "),
				Phone:    a.prompt("Phone: "),
				Password: a.prompt("Password: "),
			})
			if err != nil {
				a.printErr(err)
				break
			}
			a.printf("Registered %s with ID %s\n", parent.Name, parent.ID)
		case "2":
			err := a.parents.LinkStudent(ctx, a.prompt("Parent ID: "), a.prompt("Student ID: "))
			a.report(err, "Linked.")
		case "3":
			_, err := a.parents.Notify(ctx, a.prompt("Parent ID: "),
				a.prompt("Subject: "), a.prompt("Message: "), a.prompt("Category: "))
			a.report(err, "Notification sent.")
		case "4":
			return
		default:
			a.println("Invalid option.")
		}
	}
}

func (a *App) showFinancialSummary(ctx context.Context) {
	summary, err := a.fees.Summary(ctx)
	if err != nil {
		a.printErr(err)
		return
	}

	a.println("--- Financial Summary ---")
	a.printf("Invoiced:         %12.2f across %d invoices (%d paid)\n",
		summary.TotalInvoiced, summary.InvoiceCount, summary.PaidCount)
	a.printf("Collected:        %12.2f across %d payments\n", summary.TotalCollected, summary.PaymentCount)
	a.printf("Outstanding:      %12.2f\n", summary.Outstanding)
	a.printf("Payroll expenses: %12.2f\n", summary.PayrollExpenses)
}

// report prints the success message or the error
func (a *App) report(err error, ok string) {
	if err != nil {
		a.printErr(err)
		return
	}
	a.println(ok)
}
