// Package repository holds the PostgreSQL-backed stores for users, their
// skills, the career catalog and learning resources.
package repository

//go:generate mockgen -destination=mocks/repository_mock.go -package=mocks careercraft/internal/repository CareerRepository,ResourceRepository,UserSkillRepository
