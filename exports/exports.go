// exports/exports.go

// Package exports serializes the currently displayed (filtered) entity lists
// into spreadsheet downloads. Builders are pure: they take the in-memory list
// and return a workbook; no network, no state.
package exports

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vinshop/admin_console/models"
	"github.com/vinshop/admin_console/stats"
)

// Download filenames per export type.
const (
	FileUsers         = "Admins.xlsx"
	FileCollaborators = "CongTacVien.xlsx"
	FileProducts      = "SanPham.xlsx"
	FileOrders        = "DonHang.xlsx"
	FileSurveys       = "KhaoSat.xlsx"
	FileRevenue       = "DoanhThu.xlsx"
)

const (
	sheetOverview = "Tổng quan"
	sheetTop      = "Top 5"
	sheetRows     = "Danh sách"
)

// Users builds the user export: overview stats, top spenders, raw rows.
func Users(users []models.User) (*excelize.File, error) {
	f := newWorkbook()

	overview := [][]interface{}{
		{"Chỉ số", "Giá trị"},
		{"Tổng số người dùng", len(users)},
		{"Tổng chi tiêu", stats.SumBy(users, func(u models.User) float64 { return u.TotalSpent })},
	}
	for _, role := range stats.SortedKeys(stats.GroupCount(users, func(u models.User) string { return u.Role })) {
		count := stats.GroupCount(users, func(u models.User) string { return u.Role })[role]
		overview = append(overview, []interface{}{"Số lượng " + role, count})
	}
	if err := writeSheet(f, sheetOverview, overview); err != nil {
		return nil, err
	}

	top := [][]interface{}{{"Tên đăng nhập", "Email", "Tổng chi tiêu"}}
	for _, u := range stats.TopN(users, 5, func(u models.User) float64 { return u.TotalSpent }) {
		top = append(top, []interface{}{u.Username, u.Email, u.TotalSpent})
	}
	if err := writeSheet(f, sheetTop, top); err != nil {
		return nil, err
	}

	rows := [][]interface{}{{"ID", "Tên đăng nhập", "Email", "Vai trò", "Họ tên", "Ngày sinh", "Số điện thoại", "Ngày tham gia", "Tổng chi tiêu"}}
	for _, u := range users {
		rows = append(rows, []interface{}{
			u.ID, u.Username, u.Email, u.Role, u.FullName(), u.BirthDate,
			u.PhoneNumber, u.DateJoined.Format("2006-01-02"), u.TotalSpent,
		})
	}
	if err := writeSheet(f, sheetRows, rows); err != nil {
		return nil, err
	}

	return finish(f)
}

// Collaborators builds the collaborator export.
func Collaborators(collaborators []models.Collaborator) (*excelize.File, error) {
	f := newWorkbook()

	overview := [][]interface{}{
		{"Chỉ số", "Giá trị"},
		{"Tổng số cộng tác viên", len(collaborators)},
		{"Tổng hoa hồng đã trả", stats.SumBy(collaborators, func(c models.Collaborator) float64 { return c.TotalCommissionEarned })},
		{"Tổng đơn đã xử lý", stats.SumBy(collaborators, func(c models.Collaborator) float64 { return float64(c.TotalOrdersHandled) })},
		{"Tổng khảo sát đã xử lý", stats.SumBy(collaborators, func(c models.Collaborator) float64 { return float64(c.TotalSurveyHandled) })},
	}
	if err := writeSheet(f, sheetOverview, overview); err != nil {
		return nil, err
	}

	top := [][]interface{}{{"Tên đăng nhập", "Mã giới thiệu", "Hoa hồng"}}
	for _, c := range stats.TopN(collaborators, 5, func(c models.Collaborator) float64 { return c.TotalCommissionEarned }) {
		top = append(top, []interface{}{c.User.Username, c.ReferralCode, c.TotalCommissionEarned})
	}
	if err := writeSheet(f, sheetTop, top); err != nil {
		return nil, err
	}

	rows := [][]interface{}{{"ID", "Tên đăng nhập", "Email", "Mã giới thiệu", "Tỷ lệ hoa hồng", "Đơn đã xử lý", "Khảo sát đã xử lý", "Hoa hồng đã nhận"}}
	for _, c := range collaborators {
		rows = append(rows, []interface{}{
			c.ID, c.User.Username, c.User.Email, c.ReferralCode, c.CommissionRate,
			c.TotalOrdersHandled, c.TotalSurveyHandled, c.TotalCommissionEarned,
		})
	}
	if err := writeSheet(f, sheetRows, rows); err != nil {
		return nil, err
	}

	return finish(f)
}

// Products builds the product export.
func Products(products []models.Product) (*excelize.File, error) {
	f := newWorkbook()

	overview := [][]interface{}{
		{"Chỉ số", "Giá trị"},
		{"Tổng số sản phẩm", len(products)},
		{"Tổng tồn kho", stats.SumBy(products, func(p models.Product) float64 { return float64(p.Stock) })},
	}
	for _, cat := range stats.SortedKeys(stats.GroupCount(products, func(p models.Product) string { return p.Category })) {
		count := stats.GroupCount(products, func(p models.Product) string { return p.Category })[cat]
		overview = append(overview, []interface{}{"Danh mục " + cat, count})
	}
	if err := writeSheet(f, sheetOverview, overview); err != nil {
		return nil, err
	}

	top := [][]interface{}{{"Tên sản phẩm", "Mã", "Giá"}}
	for _, p := range stats.TopN(products, 5, func(p models.Product) float64 { return p.Price }) {
		top = append(top, []interface{}{p.ProductName, p.ProductCode, p.Price})
	}
	if err := writeSheet(f, sheetTop, top); err != nil {
		return nil, err
	}

	rows := [][]interface{}{{"ID", "Tên sản phẩm", "Mã", "Giá", "Tồn kho", "Thời hạn (ngày)", "Danh mục", "Mô tả"}}
	for _, p := range products {
		rows = append(rows, []interface{}{
			p.ID, p.ProductName, p.ProductCode, p.Price, p.Stock,
			p.SubscriptionDuration, p.Category, p.Description,
		})
	}
	if err := writeSheet(f, sheetRows, rows); err != nil {
		return nil, err
	}

	return finish(f)
}

// Orders builds the order export: status distribution, top products by
// quantity, raw rows.
func Orders(orders []models.Order) (*excelize.File, error) {
	f := newWorkbook()

	statusDist := stats.GroupCount(orders, func(o models.Order) string { return o.StatusName })
	overview := [][]interface{}{
		{"Chỉ số", "Giá trị"},
		{"Tổng số đơn", len(orders)},
		{"Tổng doanh thu", stats.SumBy(orders, func(o models.Order) float64 { return o.TotalAmount })},
	}
	for _, status := range stats.SortedKeys(statusDist) {
		overview = append(overview, []interface{}{"Đơn " + status, statusDist[status]})
	}
	if err := writeSheet(f, sheetOverview, overview); err != nil {
		return nil, err
	}

	type productQty struct {
		name string
		qty  int
	}
	qtyByProduct := map[string]int{}
	var productOrder []string
	for _, o := range orders {
		for _, item := range o.Items {
			if _, seen := qtyByProduct[item.Product.ProductName]; !seen {
				productOrder = append(productOrder, item.Product.ProductName)
			}
			qtyByProduct[item.Product.ProductName] += item.Quantity
		}
	}
	ranked := make([]productQty, 0, len(productOrder))
	for _, name := range productOrder {
		ranked = append(ranked, productQty{name: name, qty: qtyByProduct[name]})
	}
	top := [][]interface{}{{"Sản phẩm", "Số lượng bán"}}
	for _, p := range stats.TopN(ranked, 5, func(p productQty) float64 { return float64(p.qty) }) {
		top = append(top, []interface{}{p.name, p.qty})
	}
	if err := writeSheet(f, sheetTop, top); err != nil {
		return nil, err
	}

	rows := [][]interface{}{{"ID", "Người mua", "Cộng tác viên", "Trạng thái", "Số dòng", "Tổng tiền", "Ngày đặt", "Mã giới thiệu"}}
	for _, o := range orders {
		collaborator := ""
		if o.Collaborator != nil {
			collaborator = o.Collaborator.User.Username
		}
		rows = append(rows, []interface{}{
			o.ID, o.BuyerName(), collaborator, o.StatusName, len(o.Items),
			o.TotalAmount, o.OrderDate.Format("2006-01-02"), o.ReferralCodeUsed,
		})
	}
	if err := writeSheet(f, sheetRows, rows); err != nil {
		return nil, err
	}

	return finish(f)
}

// Surveys builds the survey export.
func Surveys(surveys []models.Survey) (*excelize.File, error) {
	f := newWorkbook()

	statusDist := stats.GroupCount(surveys, func(s models.Survey) string { return s.Status })
	overview := [][]interface{}{
		{"Chỉ số", "Giá trị"},
		{"Tổng số khảo sát", len(surveys)},
	}
	for _, status := range stats.SortedKeys(statusDist) {
		overview = append(overview, []interface{}{"Khảo sát " + status, statusDist[status]})
	}
	if err := writeSheet(f, sheetOverview, overview); err != nil {
		return nil, err
	}

	rows := [][]interface{}{{"ID", "Người hỏi", "Cộng tác viên", "Trạng thái", "Câu hỏi", "Trả lời", "Ngày tạo", "Ngày trả lời"}}
	for _, s := range surveys {
		collaborator := ""
		if s.Collaborator != nil {
			collaborator = s.Collaborator.User.Username
		}
		responseAt := ""
		if s.ResponseAt != nil {
			responseAt = s.ResponseAt.Format("2006-01-02")
		}
		rows = append(rows, []interface{}{
			s.ID, s.User.Username, collaborator, s.Status, s.Question,
			s.Response, s.CreatedAt.Format("2006-01-02"), responseAt,
		})
	}
	if err := writeSheet(f, sheetRows, rows); err != nil {
		return nil, err
	}

	return finish(f)
}

// Revenue builds the revenue export across collaborators.
func Revenue(details []models.RevenueDetail) (*excelize.File, error) {
	f := newWorkbook()

	overview := [][]interface{}{
		{"Chỉ số", "Giá trị"},
		{"Tổng doanh thu", stats.SumBy(details, func(d models.RevenueDetail) float64 { return d.TotalRevenue })},
		{"Tổng hoa hồng", stats.SumBy(details, func(d models.RevenueDetail) float64 { return d.TotalCommission })},
		{"Doanh thu gồm hoa hồng", stats.SumBy(details, func(d models.RevenueDetail) float64 { return d.TotalRevenueWithCommission })},
	}
	if err := writeSheet(f, sheetOverview, overview); err != nil {
		return nil, err
	}

	top := [][]interface{}{{"Cộng tác viên", "Doanh thu"}}
	for _, d := range stats.TopN(details, 5, func(d models.RevenueDetail) float64 { return d.TotalRevenue }) {
		top = append(top, []interface{}{d.CollaboratorName, d.TotalRevenue})
	}
	if err := writeSheet(f, sheetTop, top); err != nil {
		return nil, err
	}

	rows := [][]interface{}{{"ID", "Cộng tác viên", "Doanh thu", "Hoa hồng", "Doanh thu gồm hoa hồng", "Tỷ lệ hoa hồng"}}
	for _, d := range details {
		rows = append(rows, []interface{}{
			d.CollaboratorID, d.CollaboratorName, d.TotalRevenue,
			d.TotalCommission, d.TotalRevenueWithCommission, d.CommissionRate,
		})
	}
	if err := writeSheet(f, sheetRows, rows); err != nil {
		return nil, err
	}

	return finish(f)
}

func newWorkbook() *excelize.File {
	return excelize.NewFile()
}

// writeSheet creates a sheet and fills it row by row starting at A1.
func writeSheet(f *excelize.File, name string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("failed to write sheet %s row %d: %w", name, i+1, err)
		}
	}
	return nil
}

// finish drops the default sheet and activates the overview.
func finish(f *excelize.File) (*excelize.File, error) {
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	idx, err := f.GetSheetIndex(sheetOverview)
	if err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}
	return f, nil
}
