/*
 *  Copyright (c) 2025, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package repository

import (
	"database/sql"
	"errors"

	"hub-api/src/internal/database"
	"hub-api/src/internal/model"
)

// OAuthAppRepo implements OAuthAppRepository
type OAuthAppRepo struct {
	db *database.DB
}

// NewOAuthAppRepo creates a new OAuth app repository
func NewOAuthAppRepo(db *database.DB) OAuthAppRepository {
	return &OAuthAppRepo{db: db}
}

// GetByClientID retrieves a registered app by its client id
func (r *OAuthAppRepo) GetByClientID(clientID string) (*model.OAuthApp, error) {
	app := &model.OAuthApp{}
	query := `
		SELECT id, client_id, client_secret, scope, name, disabled, account_id, created_at
		FROM oauth_apps
		WHERE client_id = ?
	`
	err := r.db.QueryRow(r.db.Rebind(query), clientID).Scan(
		&app.ID, &app.ClientID, &app.ClientSecret, &app.Scope, &app.Name, &app.Disabled, &app.AccountID, &app.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return app, nil
}
