package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace_admin/internal/models"
	"marketplace_admin/internal/rules"
	"marketplace_admin/internal/services"
	"marketplace_admin/pkg/utils"
)

// StaffHandler holds the staff service.
type StaffHandler struct {
	staffService services.StaffService
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(ss services.StaffService) *StaffHandler {
	return &StaffHandler{staffService: ss}
}

type setStaffStatusRequest struct {
	Status models.StaffStatus `json:"status" binding:"required"`
}

// --- StaffMember Handler Methods ---

// CreateStaffMember handles the creation of a new staff member.
func (h *StaffHandler) CreateStaffMember(c *gin.Context) {
	var req services.CreateStaffMemberRequest
	if !bindJSON(c, &req, "CreateStaffMember") {
		return
	}

	staffMember, err := h.staffService.CreateStaffMember(req)
	if err != nil {
		respondServiceError(c, err, "CreateStaffMember")
		return
	}
	c.JSON(http.StatusCreated, staffMember)
}

// GetStaffMembers lists staff filtered by search, role and status.
func (h *StaffHandler) GetStaffMembers(c *gin.Context) {
	staffMembers := h.staffService.ListStaffMembers(services.StaffFilter{
		Search: c.Query("search"),
		Role:   models.Role(c.Query("role")),
		Status: models.StaffStatus(c.Query("status")),
	})
	c.JSON(http.StatusOK, listResponse(staffMembers))
}

// GetStaffMemberByID handles fetching a single staff member by ID.
func (h *StaffHandler) GetStaffMemberByID(c *gin.Context) {
	staffID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	staffMember, err := h.staffService.GetStaffMember(staffID)
	if err != nil {
		respondServiceError(c, err, "GetStaffMemberByID")
		return
	}
	c.JSON(http.StatusOK, staffMember)
}

// UpdateStaffMember handles updating a staff member.
func (h *StaffHandler) UpdateStaffMember(c *gin.Context) {
	staffID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateStaffMemberRequest
	if !bindJSON(c, &req, "UpdateStaffMember") {
		return
	}

	staffMember, err := h.staffService.UpdateStaffMember(staffID, req)
	if err != nil {
		respondServiceError(c, err, "UpdateStaffMember")
		return
	}
	c.JSON(http.StatusOK, staffMember)
}

// SetStaffStatus moves a staff member to the requested status.
func (h *StaffHandler) SetStaffStatus(c *gin.Context) {
	staffID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req setStaffStatusRequest
	if !bindJSON(c, &req, "SetStaffStatus") {
		return
	}

	staffMember, err := h.staffService.SetStaffStatus(staffID, req.Status)
	if err != nil {
		respondServiceError(c, err, "SetStaffStatus")
		return
	}
	c.JSON(http.StatusOK, staffMember)
}

// ToggleStaffStatus flips a staff member between active and inactive.
func (h *StaffHandler) ToggleStaffStatus(c *gin.Context) {
	staffID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	staffMember, err := h.staffService.ToggleStaffStatus(staffID)
	if err != nil {
		respondServiceError(c, err, "ToggleStaffStatus")
		return
	}
	c.JSON(http.StatusOK, staffMember)
}

// RecordStaffLogin stamps last_login_at with the request time.
func (h *StaffHandler) RecordStaffLogin(c *gin.Context) {
	staffID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	staffMember, err := h.staffService.RecordLogin(staffID, utils.RequestTime(c))
	if err != nil {
		respondServiceError(c, err, "RecordStaffLogin")
		return
	}
	c.JSON(http.StatusOK, staffMember)
}

// DeleteStaffMember handles deleting a staff member.
func (h *StaffHandler) DeleteStaffMember(c *gin.Context) {
	staffID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.staffService.DeleteStaffMember(staffID); err != nil {
		respondServiceError(c, err, "DeleteStaffMember")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted successfully"})
}

// GetStaffStats returns the counts shown on the staff page cards.
func (h *StaffHandler) GetStaffStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.staffService.GetStaffStats())
}

// --- Role Handler Methods ---

// GetRoles lists every role template with its permissions.
func (h *StaffHandler) GetRoles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"roles":       rules.RoleTemplates(),
		"permissions": rules.AllPermissionKeys(),
	})
}

// GetRolePermissions returns the default permission set of one role.
func (h *StaffHandler) GetRolePermissions(c *gin.Context) {
	role := models.Role(c.Param("role"))
	perms, err := rules.ResolvePermissions(role)
	if err != nil {
		respondServiceError(c, err, "GetRolePermissions")
		return
	}
	utils.LogDebug("role permissions resolved", map[string]interface{}{"role": role, "count": len(perms)})
	c.JSON(http.StatusOK, gin.H{"role": role, "permissions": perms})
}
