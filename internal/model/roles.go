// Package model contain the document shapes stored in each collection.
package model

// User role constants
var (
	// RoleStudent is a regular student account
	RoleStudent = "student"
	// RoleProStudent is a student whose cumulative internship duration reached
	// the pro threshold; for broadcast targeting it is a superset of RoleStudent
	RoleProStudent = "pro_student"
	// RoleCompany is a company account
	RoleCompany = "company"
	// RoleSCAD is a SCAD office member
	RoleSCAD = "scad"
	// RoleFaculty is a faculty member reviewing internship reports
	RoleFaculty = "faculty"
)
