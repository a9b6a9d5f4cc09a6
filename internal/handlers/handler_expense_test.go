package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const expenseID = "33333333-3333-3333-3333-333333333333"

func (s *HandlerTestSuite) multipartRequest(fields map[string]string, fileName string, content []byte) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		s.Require().NoError(mw.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		s.Require().NoError(err)
		_, err = fw.Write(content)
		s.Require().NoError(err)
	}
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/expense/addWithFile", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func expenseFields() map[string]string {
	return map[string]string{
		"title":       "Groceries",
		"category":    "cat-1",
		"subcategory": "sub-1",
		"vendor":      "ven-1",
		"account":     "acc-1",
		"amount":      "12.50",
	}
}

func (s *HandlerTestSuite) TestCreateExpense() {
	s.Run("populated reply", func() {
		s.expenses.On("CreateExpense", mock.Anything, userActor, mock.MatchedBy(func(req dto.CreateExpenseRequest) bool {
			return req.Title == "Groceries" && req.Amount.Equal(decimal.RequireFromString("12.5"))
		})).Return(&domain.Expense{
			ExpenseID: expenseID,
			Title:     "Groceries",
			Category:  domain.Ref{ID: "cat-1", Name: "Food"},
			Vendor:    domain.Ref{ID: "ven-1", Title: "Market"},
			Status:    domain.ExpensePending,
			Comments:  []domain.Comment{},
		}, nil).Once()

		w, env := s.do(http.MethodPost, "/expense/addexpence", userActor,
			`{"title":"Groceries","category":"cat-1","subcategory":"sub-1","vendor":"ven-1","account":"acc-1","amount":12.5}`)

		s.Equal(http.StatusOK, w.Code)
		s.Contains(string(env.Data), `"category":{"_id":"cat-1","name":"Food"}`)
		s.Contains(string(env.Data), `"status":"pending"`)
	})

	s.Run("missing references", func() {
		w, env := s.do(http.MethodPost, "/expense/addexpence", userActor, `{"title":"Groceries"}`)

		s.Equal(http.StatusBadRequest, w.Code)
		for _, field := range []string{"category", "subcategory", "vendor", "account"} {
			s.Equal(field+" is required", env.Errors[field])
		}
	})

	s.Run("unknown status", func() {
		w, env := s.do(http.MethodPost, "/expense/addexpence", userActor,
			`{"title":"Groceries","category":"c","subcategory":"s","vendor":"v","account":"a","status":"done"}`)

		s.Equal(http.StatusBadRequest, w.Code)
		s.Equal("must be one of pending, approved, rejected", env.Errors["status"])
	})
}

func (s *HandlerTestSuite) TestCreateExpenseWithFile_Success() {
	var storedAt string
	s.expenses.On("CreateExpenseWithReceipt", mock.Anything, userActor,
		mock.MatchedBy(func(req dto.CreateExpenseRequest) bool {
			return req.Title == "Groceries" && req.Amount.Equal(decimal.RequireFromString("12.5"))
		}),
		mock.MatchedBy(func(r dto.ReceiptUpload) bool {
			content, err := os.ReadFile(r.LocalPath)
			storedAt = r.LocalPath
			return err == nil && string(content) == "png-bytes" && r.ContentType == "image/png" && r.FileName == "receipt.png"
		}),
	).Return(&domain.Expense{ExpenseID: expenseID, ReceiptURL: "https://storage.googleapis.com/b/receipts/x.png"}, nil).Once()

	w, env := s.send(s.multipartRequest(expenseFields(), "receipt.png", []byte("png-bytes")), userActor)

	s.Equal(http.StatusOK, w.Code, w.Body.String())
	s.Contains(string(env.Data), `"image":"https://storage.googleapis.com/b/receipts/x.png"`)
	s.Require().NotEmpty(storedAt)
	s.NoFileExists(storedAt)
	s.expenses.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestCreateExpenseWithFile_Rejections() {
	s.Run("no file", func() {
		w, env := s.send(s.multipartRequest(expenseFields(), "", nil), userActor)
		s.Equal(http.StatusBadRequest, w.Code)
		s.Equal("file is required", env.Errors["file"])
	})

	s.Run("not an image", func() {
		w, env := s.send(s.multipartRequest(expenseFields(), "notes.txt", []byte("hello")), userActor)
		s.Equal(http.StatusBadRequest, w.Code)
		s.Equal("must be an image or a PDF", env.Errors["file"])
	})

	s.Run("missing fields", func() {
		w, env := s.send(s.multipartRequest(map[string]string{"title": "x"}, "receipt.png", []byte("png")), userActor)
		s.Equal(http.StatusBadRequest, w.Code)
		s.Contains(env.Errors, "category")
	})

	s.Run("upload failure", func() {
		s.expenses.On("CreateExpenseWithReceipt", mock.Anything, userActor, mock.Anything, mock.Anything).
			Return(nil, apperrors.NewBadGatewayError("Receipt upload failed", os.ErrDeadlineExceeded)).Once()

		w, env := s.send(s.multipartRequest(expenseFields(), "receipt.pdf", []byte("%PDF")), userActor)
		s.Equal(http.StatusBadGateway, w.Code)
		s.Equal("Receipt upload failed", env.Message)
	})

	entries, err := os.ReadDir(s.cfg.UploadTmpDir)
	s.Require().NoError(err)
	s.Empty(entries)
	s.expenses.AssertNotCalled(s.T(), "CreateExpense", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestExpenseReads() {
	s.Run("list", func() {
		s.expenses.On("ListExpenses", mock.Anything, userActor).Return([]domain.Expense{{ExpenseID: "e1"}}, nil).Once()
		w, env := s.do(http.MethodGet, "/expense/expence", userActor, nil)
		s.Equal(http.StatusOK, w.Code)
		s.Contains(string(env.Data), `"_id":"e1"`)
	})

	s.Run("by user forbidden", func() {
		s.expenses.On("ListExpensesByUser", mock.Anything, userActor, adminID).Return(nil, apperrors.ErrForbidden).Once()
		w, _ := s.do(http.MethodGet, "/expense/user/"+adminID, userActor, nil)
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("get not found", func() {
		s.expenses.On("GetExpenseByID", mock.Anything, userActor, expenseID).Return(nil, apperrors.ErrNotFound).Once()
		w, env := s.do(http.MethodGet, "/expense/"+expenseID, userActor, nil)
		s.Equal(http.StatusNotFound, w.Code)
		s.Equal("Expense not found", env.Message)
	})
}

func (s *HandlerTestSuite) TestUpdateExpenseStatus() {
	s.Run("valid status", func() {
		s.expenses.On("UpdateExpenseStatus", mock.Anything, adminActor, expenseID, domain.ExpenseApproved).
			Return(&domain.Expense{ExpenseID: expenseID, Status: domain.ExpenseApproved}, nil).Once()

		w, env := s.do(http.MethodPut, "/expense/updateExpenceStatus/"+expenseID, adminActor, `{"status":"approved"}`)
		s.Equal(http.StatusOK, w.Code)
		s.Equal("Expense status updated successfully", env.Message)
	})

	s.Run("unknown status", func() {
		w, env := s.do(http.MethodPut, "/expense/updateExpenceStatus/"+expenseID, adminActor, `{"status":"done"}`)
		s.Equal(http.StatusBadRequest, w.Code)
		s.Contains(env.Errors["status"], "pending, approved, rejected")
	})

	s.Run("missing status", func() {
		w, env := s.do(http.MethodPut, "/expense/updateExpenceStatus/"+expenseID, adminActor, `{}`)
		s.Equal(http.StatusBadRequest, w.Code)
		s.Equal("status is required", env.Errors["status"])
	})

	s.expenses.AssertNumberOfCalls(s.T(), "UpdateExpenseStatus", 1)
}

func (s *HandlerTestSuite) TestUpdateExpense() {
	title := "Weekly groceries"
	s.expenses.On("UpdateExpense", mock.Anything, userActor, expenseID, mock.MatchedBy(func(req dto.UpdateExpenseRequest) bool {
		return req.Title != nil && *req.Title == title && req.Amount == nil
	})).Return(&domain.Expense{ExpenseID: expenseID, Title: title}, nil).Once()

	w, _ := s.do(http.MethodPut, "/expense/updateExpence/"+expenseID, userActor, map[string]any{"title": title})
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestAddComment() {
	s.Run("appends", func() {
		s.expenses.On("AddComment", mock.Anything, userActor, expenseID, dto.AddCommentRequest{Text: "looks fine"}).
			Return(&domain.Expense{ExpenseID: expenseID, Comments: []domain.Comment{{Author: domain.DefaultCommentAuthor, Text: "looks fine"}}}, nil).Once()

		w, env := s.do(http.MethodPost, "/expense/addComment/"+expenseID, userActor, `{"text":"looks fine"}`)
		s.Equal(http.StatusOK, w.Code)
		s.Contains(string(env.Data), `"author":"Anonymous"`)
	})

	s.Run("text required", func() {
		w, env := s.do(http.MethodPost, "/expense/addComment/"+expenseID, userActor, `{"author":"Ann"}`)
		s.Equal(http.StatusBadRequest, w.Code)
		s.Equal("text is required", env.Errors["text"])
	})
}

func (s *HandlerTestSuite) TestDeleteExpense() {
	s.expenses.On("DeleteExpense", mock.Anything, userActor, expenseID).Return(nil).Once()

	w, env := s.do(http.MethodDelete, "/expense/"+expenseID, userActor, nil)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("Expense deleted successfully", env.Message)
}
