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

package model

// SeedEntry is one development fixture: a client owning a website,
// an OAuth app registered against it, and the website's storage quota.
type SeedEntry struct {
	Client struct {
		Name  string `yaml:"name"`
		Phone string `yaml:"phone"`
		Email string `yaml:"email"`
	} `yaml:"client"`
	Website struct {
		Name string `yaml:"name"`
		URL  string `yaml:"url"`
	} `yaml:"website"`
	App struct {
		ClientID     string `yaml:"clientId"`
		ClientSecret string `yaml:"clientSecret"`
		Scope        string `yaml:"scope"`
		Name         string `yaml:"name"`
		Disabled     bool   `yaml:"disabled"`
	} `yaml:"app"`
	Quota struct {
		Total  int64  `yaml:"total"`
		Bucket string `yaml:"bucket"`
	} `yaml:"quota"`
}
